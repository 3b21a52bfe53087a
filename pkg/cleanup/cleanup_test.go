package cleanup_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/limbo/levelup/pkg/cleanup"
)

func TestCleanUpOrder(t *testing.T) {
	var order []string
	job := func(name string, err error) *cleanup.Job {
		return &cleanup.Job{Name: name, F: func() error {
			order = append(order, name)
			return err
		}}
	}
	cleanup.Register(job("pool", nil))
	cleanup.Register(job("redis", errors.New("already closed")))
	cleanup.Register(job("server", nil))

	cleanup.CleanUp()
	assert.Equal(t, []string{"server", "redis", "pool"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
