package batch

import (
	"context"
	"sync"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

var _ selector = &selectorMock{}

type selectorMock struct {
	SelectBaseSetFunc func(ctx context.Context, key string) []domain.BaseWord
	ExtensionPoolFunc func(ctx context.Context) []string

	calls struct {
		SelectBaseSet []struct {
			Ctx context.Context
			Key string
		}
	}
	lockSelectBaseSet sync.RWMutex
}

func (mock *selectorMock) SelectBaseSet(ctx context.Context, key string) []domain.BaseWord {
	if mock.SelectBaseSetFunc == nil {
		panic("selectorMock.SelectBaseSetFunc: method is nil but selector.SelectBaseSet was just called")
	}
	mock.lockSelectBaseSet.Lock()
	mock.calls.SelectBaseSet = append(mock.calls.SelectBaseSet, struct {
		Ctx context.Context
		Key string
	}{Ctx: ctx, Key: key})
	mock.lockSelectBaseSet.Unlock()
	return mock.SelectBaseSetFunc(ctx, key)
}

func (mock *selectorMock) SelectBaseSetCalls() []struct {
	Ctx context.Context
	Key string
} {
	mock.lockSelectBaseSet.RLock()
	defer mock.lockSelectBaseSet.RUnlock()
	return mock.calls.SelectBaseSet
}

func (mock *selectorMock) ExtensionPool(ctx context.Context) []string {
	if mock.ExtensionPoolFunc == nil {
		panic("selectorMock.ExtensionPoolFunc: method is nil but selector.ExtensionPool was just called")
	}
	return mock.ExtensionPoolFunc(ctx)
}
