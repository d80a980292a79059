package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ntereshin/eventform-gateway/internal/form"
	"github.com/ntereshin/eventform-gateway/internal/pkg/apperror"
)

func TestSessionStore_ConcurrentGetAndTouch(t *testing.T) {
	ss := NewSessionStore(time.Hour)
	defer ss.Close()

	sess := form.NewCreateSession(testOwner)
	ss.Put(sess)

	// Два потока запросов трогают одну сессию, третий читает метку
	// активности как цикл очистки. Под -race гонок быть не должно.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_, err := ss.Get(sess.ID, testOwner)
				assert.NoError(t, err)
			}
		}()
	}
	for j := 0; j < 100; j++ {
		_ = sess.LastTouched()
	}
	wg.Wait()
}

func TestSessionStore_EvictIdle(t *testing.T) {
	ss := NewSessionStore(time.Hour)
	defer ss.Close()

	sess := form.NewCreateSession(testOwner)
	ss.Put(sess)

	// Свежая сессия переживает очистку.
	ss.evictIdle(time.Now().Add(-time.Hour))
	_, err := ss.Get(sess.ID, testOwner)
	assert.NoError(t, err)

	// Простоявшая дольше TTL — вытесняется.
	ss.evictIdle(time.Now().Add(time.Minute))
	_, err = ss.Get(sess.ID, testOwner)
	assert.True(t, apperror.IsNotFound(err))
}

func TestSessionStore_CloseStopsCleanup(t *testing.T) {
	ss := NewSessionStore(time.Hour)
	ss.Close()

	// Реестр остаётся рабочим после остановки фоновой очистки.
	sess := form.NewCreateSession(testOwner)
	ss.Put(sess)

	got, err := ss.Get(sess.ID, testOwner)
	assert.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
}
