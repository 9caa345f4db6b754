package roundtrip_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/skyloop/skyloop/roundtrip"
)

func TestStopToken_ZeroValueUnset(t *testing.T) {
	var tok roundtrip.StopToken
	assert.False(t, tok.Stopped())
}

func TestStopToken_RequestIsIdempotent(t *testing.T) {
	tok := roundtrip.NewStopToken()
	tok.Request()
	tok.Request()
	assert.True(t, tok.Stopped())
}

func TestStopToken_ConcurrentRequests(t *testing.T) {
	tok := roundtrip.NewStopToken()
	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			tok.Request()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.True(t, tok.Stopped())
}

func TestStopToken_RequestAfterFires(t *testing.T) {
	tok := roundtrip.NewStopToken()
	cancel := tok.RequestAfter(5 * time.Millisecond)
	defer cancel()

	assert.Eventually(t, tok.Stopped, time.Second, time.Millisecond)
}

func TestStopToken_RequestAfterCancelled(t *testing.T) {
	tok := roundtrip.NewStopToken()
	cancel := tok.RequestAfter(50 * time.Millisecond)
	cancel()

	time.Sleep(80 * time.Millisecond)
	assert.False(t, tok.Stopped(), "disarmed timer must not fire")
}
