package entity

// Patches list the only fields a client may change. Nil means "keep".

type UserPatch struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=128"`
	Username *string `json:"username,omitempty" validate:"omitempty,alphanum_underscore,min=3,max=128"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
}

func (p *UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Username == nil && p.Password == nil
}

type PresetHabitPatch struct {
	Description  *string `json:"description,omitempty" validate:"omitempty,min=1,max=300"`
	CategoryName *string `json:"category_name,omitempty" validate:"omitempty,min=1,max=128"`
}

func (p *PresetHabitPatch) IsEmpty() bool {
	return p.Description == nil && p.CategoryName == nil
}

type CustomHabitPatch struct {
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=200"`
}

func (p *CustomHabitPatch) IsEmpty() bool {
	return p.Description == nil
}

type HabitListPatch struct {
	Name *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
}

func (p *HabitListPatch) IsEmpty() bool {
	return p.Name == nil
}
