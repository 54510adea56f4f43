package catalog

import (
	"context"
	"sync"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

var _ catalogStore = &catalogStoreMock{}

type catalogStoreMock struct {
	BaseSetFunc       func(ctx context.Context, name string) ([]domain.BaseWord, error)
	ExtensionPoolFunc func(ctx context.Context) ([]string, error)
	PingFunc          func(ctx context.Context) error

	calls struct {
		BaseSet []struct {
			Ctx  context.Context
			Name string
		}
	}
	lockBaseSet sync.RWMutex
}

func (mock *catalogStoreMock) BaseSet(ctx context.Context, name string) ([]domain.BaseWord, error) {
	if mock.BaseSetFunc == nil {
		panic("catalogStoreMock.BaseSetFunc: method is nil but catalogStore.BaseSet was just called")
	}
	mock.lockBaseSet.Lock()
	mock.calls.BaseSet = append(mock.calls.BaseSet, struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name})
	mock.lockBaseSet.Unlock()
	return mock.BaseSetFunc(ctx, name)
}

func (mock *catalogStoreMock) BaseSetCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockBaseSet.RLock()
	defer mock.lockBaseSet.RUnlock()
	return mock.calls.BaseSet
}

func (mock *catalogStoreMock) ExtensionPool(ctx context.Context) ([]string, error) {
	if mock.ExtensionPoolFunc == nil {
		panic("catalogStoreMock.ExtensionPoolFunc: method is nil but catalogStore.ExtensionPool was just called")
	}
	return mock.ExtensionPoolFunc(ctx)
}

func (mock *catalogStoreMock) Ping(ctx context.Context) error {
	if mock.PingFunc == nil {
		panic("catalogStoreMock.PingFunc: method is nil but catalogStore.Ping was just called")
	}
	return mock.PingFunc(ctx)
}
