package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/levelup/internal/error_values"
	"github.com/limbo/levelup/internal/notify"
	"github.com/limbo/levelup/internal/repository"
	"github.com/limbo/levelup/pkg/entity"
)

type HabitListService struct {
	lists    repository.HabitListsRepositoryI
	presets  repository.PresetHabitsRepositoryI
	customs  repository.CustomHabitsRepositoryI
	users    repository.UsersRepositoryI
	pub      Publisher
	validate *validator.Validate
	now      func() time.Time
}

func NewHabitListService(lists repository.HabitListsRepositoryI, presets repository.PresetHabitsRepositoryI,
	customs repository.CustomHabitsRepositoryI, users repository.UsersRepositoryI, pub Publisher) *HabitListService {
	return &HabitListService{
		lists:    lists,
		presets:  presets,
		customs:  customs,
		users:    users,
		pub:      pub,
		validate: InitValidator(),
		now:      time.Now,
	}
}

// WithClock replaces the time source used to evaluate deadlines.
func (hs *HabitListService) WithClock(now func() time.Time) *HabitListService {
	hs.now = now
	return hs
}

func (hs *HabitListService) Create(ctx context.Context, actor Actor, req CreateHabitListRequest) (*entity.HabitList, error) {
	if err := validateStruct(hs.validate, req); err != nil {
		return nil, err
	}
	list := &entity.HabitList{Name: req.Name, ListOwnerID: actor.ID}
	if err := hs.lists.Create(ctx, list); err != nil {
		return nil, fmt.Errorf("creating habit list: %w", err)
	}
	hs.pub.Publish(ctx, notify.TopicHabitListCreated, list)
	return list, nil
}

func (hs *HabitListService) Get(ctx context.Context, id uuid.UUID) (*entity.HabitListView, error) {
	list, err := hs.lists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting habit list: %w", err)
	}
	return hs.view(ctx, list)
}

func (hs *HabitListService) view(ctx context.Context, list *entity.HabitList) (*entity.HabitListView, error) {
	details, err := hs.lists.Details(ctx, list.ID)
	if err != nil {
		return nil, fmt.Errorf("getting habit list details: %w", err)
	}
	return &entity.HabitListView{HabitList: list, Habits: details}, nil
}

func (hs *HabitListService) List(ctx context.Context, actor Actor) ([]*entity.HabitList, error) {
	if !actor.IsAdmin {
		return nil, errorvalues.ErrAdminRequired
	}
	lists, err := hs.lists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing habit lists: %w", err)
	}
	return lists, nil
}

func (hs *HabitListService) ListOwn(ctx context.Context, actor Actor) ([]*entity.HabitList, error) {
	lists, err := hs.lists.ListByOwner(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("listing user's habit lists: %w", err)
	}
	return lists, nil
}

func (hs *HabitListService) Update(ctx context.Context, actor Actor, id uuid.UUID, patch entity.HabitListPatch) (*entity.HabitList, error) {
	if _, err := hs.ownedList(ctx, actor, id); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, errorvalues.ErrEmptyPatch
	}
	if err := validateStruct(hs.validate, patch); err != nil {
		return nil, err
	}
	list, err := hs.lists.Patch(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("updating habit list: %w", err)
	}
	hs.publishList(ctx, list)
	return list, nil
}

func (hs *HabitListService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := hs.ownedList(ctx, actor, id); err != nil {
		return err
	}
	if err := hs.lists.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting habit list: %w", err)
	}
	return nil
}

func (hs *HabitListService) AddPresetHabits(ctx context.Context, actor Actor, listID uuid.UUID, habitIDs []uuid.UUID) ([]*entity.HabitListItem, error) {
	list, err := hs.ownedList(ctx, actor, listID)
	if err != nil {
		return nil, err
	}
	added := make([]*entity.HabitListItem, 0, len(habitIDs))
	for _, id := range habitIDs {
		if _, err = hs.presets.GetByID(ctx, id); err != nil {
			return nil, fmt.Errorf("getting preset habit %s: %w", id, err)
		}
		item, ok, err := hs.lists.AddItem(ctx, listID, entity.HabitKindPreset, id)
		if err != nil {
			return nil, fmt.Errorf("adding preset habit %s: %w", id, err)
		}
		if ok {
			added = append(added, item)
		}
	}
	hs.publishList(ctx, list)
	return added, nil
}

func (hs *HabitListService) AddCustomHabits(ctx context.Context, actor Actor, listID uuid.UUID, habitIDs []uuid.UUID) ([]*entity.HabitListItem, error) {
	list, err := hs.ownedList(ctx, actor, listID)
	if err != nil {
		return nil, err
	}
	added := make([]*entity.HabitListItem, 0, len(habitIDs))
	for _, id := range habitIDs {
		habit, err := hs.customs.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("getting custom habit %s: %w", id, err)
		}
		if habit.HabitOwnerID != list.ListOwnerID && !actor.IsAdmin {
			return nil, errorvalues.ErrWrongOwner
		}
		item, ok, err := hs.lists.AddItem(ctx, listID, entity.HabitKindCustom, id)
		if err != nil {
			return nil, fmt.Errorf("adding custom habit %s: %w", id, err)
		}
		if ok {
			added = append(added, item)
		}
	}
	hs.publishList(ctx, list)
	return added, nil
}

func (hs *HabitListService) PresetHabits(ctx context.Context, listID uuid.UUID) ([]*entity.PresetHabit, error) {
	items, err := hs.items(ctx, listID)
	if err != nil {
		return nil, err
	}
	habits := make([]*entity.PresetHabit, 0, len(items))
	for _, item := range items {
		if item.Kind() != entity.HabitKindPreset {
			continue
		}
		habit, err := hs.presets.GetByID(ctx, *item.PresetHabitID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrPresetHabitNotFound) {
				continue
			}
			return nil, fmt.Errorf("getting preset habit: %w", err)
		}
		habits = append(habits, habit)
	}
	return habits, nil
}

func (hs *HabitListService) CustomHabits(ctx context.Context, listID uuid.UUID) ([]*entity.CustomHabit, error) {
	items, err := hs.items(ctx, listID)
	if err != nil {
		return nil, err
	}
	habits := make([]*entity.CustomHabit, 0, len(items))
	for _, item := range items {
		if item.Kind() != entity.HabitKindCustom {
			continue
		}
		habit, err := hs.customs.GetByID(ctx, *item.CustomHabitID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrCustomHabitNotFound) {
				continue
			}
			return nil, fmt.Errorf("getting custom habit: %w", err)
		}
		habits = append(habits, habit)
	}
	return habits, nil
}

func (hs *HabitListService) items(ctx context.Context, listID uuid.UUID) ([]*entity.HabitListItem, error) {
	if _, err := hs.lists.GetByID(ctx, listID); err != nil {
		return nil, fmt.Errorf("getting habit list: %w", err)
	}
	items, err := hs.lists.Items(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("getting habit list items: %w", err)
	}
	return items, nil
}

func (hs *HabitListService) Items(ctx context.Context, listID uuid.UUID) ([]entity.HabitDetails, error) {
	if _, err := hs.lists.GetByID(ctx, listID); err != nil {
		return nil, fmt.Errorf("getting habit list: %w", err)
	}
	details, err := hs.lists.Details(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("getting habit list details: %w", err)
	}
	return details, nil
}

func (hs *HabitListService) CompletePresetHabit(ctx context.Context, actor Actor, listID, habitID uuid.UUID) (*CompletionResult, error) {
	return hs.complete(ctx, actor, listID, entity.HabitKindPreset, habitID)
}

func (hs *HabitListService) CompleteCustomHabit(ctx context.Context, actor Actor, listID, habitID uuid.UUID) (*CompletionResult, error) {
	return hs.complete(ctx, actor, listID, entity.HabitKindCustom, habitID)
}

// complete loads list, item, reward and owner, lets the list apply the
// completion and stores the outcome in one transaction.
func (hs *HabitListService) complete(ctx context.Context, actor Actor, listID uuid.UUID, kind entity.HabitKind, habitID uuid.UUID) (*CompletionResult, error) {
	list, err := hs.ownedList(ctx, actor, listID)
	if err != nil {
		return nil, err
	}
	item, err := hs.lists.FindItem(ctx, listID, kind, habitID)
	if err != nil {
		return nil, fmt.Errorf("searching habit in list: %w", err)
	}
	reward, err := hs.reward(ctx, kind, habitID)
	if err != nil {
		return nil, err
	}
	owner, err := hs.users.FindByID(ctx, list.ListOwnerID)
	if err != nil {
		return nil, fmt.Errorf("getting list owner: %w", err)
	}
	completion, err := list.CompleteItem(item, reward, owner, hs.now())
	if err != nil {
		return nil, err
	}
	if err = hs.lists.SaveCompletion(ctx, list, item, owner); err != nil {
		return nil, fmt.Errorf("saving completion: %w", err)
	}
	hs.pub.Publish(ctx, notify.TopicUserUpdate, notify.UserUpdate{UserID: owner.ID, UserData: owner})
	hs.publishList(ctx, list)
	return &CompletionResult{Completion: completion, Item: item, Owner: owner}, nil
}

func (hs *HabitListService) reward(ctx context.Context, kind entity.HabitKind, habitID uuid.UUID) (int, error) {
	if kind == entity.HabitKindPreset {
		habit, err := hs.presets.GetByID(ctx, habitID)
		if err != nil {
			return 0, fmt.Errorf("getting preset habit: %w", err)
		}
		return habit.XPReward, nil
	}
	habit, err := hs.customs.GetByID(ctx, habitID)
	if err != nil {
		return 0, fmt.Errorf("getting custom habit: %w", err)
	}
	return habit.XPReward, nil
}

func (hs *HabitListService) ownedList(ctx context.Context, actor Actor, id uuid.UUID) (*entity.HabitList, error) {
	list, err := hs.lists.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting habit list: %w", err)
	}
	if !actor.CanManage(list.ListOwnerID) {
		return nil, errorvalues.ErrWrongOwner
	}
	return list, nil
}

// publishList broadcasts the list with its habits. Failing to build the view
// only skips the event.
func (hs *HabitListService) publishList(ctx context.Context, list *entity.HabitList) {
	view, err := hs.view(ctx, list)
	if err != nil {
		return
	}
	hs.pub.Publish(ctx, notify.TopicHabitListUpdate, notify.HabitListUpdate{HabitListID: list.ID, HabitListData: view})
}
