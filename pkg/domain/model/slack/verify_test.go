package slack_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/inari/pkg/domain/model/slack"
)

func signSlack(secret, timestamp string, body []byte) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, string(body))
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(baseString))
	return "v0=" + hex.EncodeToString(h.Sum(nil))
}

func TestVerifier(t *testing.T) {
	secret := "test-signing-secret"
	body := []byte(`{"type":"event_callback"}`)

	t.Run("accepts a valid signature", func(t *testing.T) {
		v := slack.NewVerifier(secret)
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		gt.NoError(t, v.Verify(body, ts, signSlack(secret, ts, body)))
	})

	t.Run("rejects a signature from the wrong secret", func(t *testing.T) {
		v := slack.NewVerifier(secret)
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		err := v.Verify(body, ts, signSlack("other-secret", ts, body))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, slack.ErrInvalidSignature))
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		v := slack.NewVerifier(secret)
		ts := strconv.FormatInt(time.Now().Unix(), 10)
		sig := signSlack(secret, ts, body)
		err := v.Verify([]byte(`{"type":"tampered"}`), ts, sig)
		gt.Error(t, err)
	})

	t.Run("rejects a timestamp outside the replay window", func(t *testing.T) {
		v := slack.NewVerifier(secret)
		ts := strconv.FormatInt(time.Now().Add(-10*time.Minute).Unix(), 10)
		err := v.Verify(body, ts, signSlack(secret, ts, body))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, slack.ErrStaleTimestamp))
	})

	t.Run("rejects a non-numeric timestamp", func(t *testing.T) {
		v := slack.NewVerifier(secret)
		gt.Error(t, v.Verify(body, "not-a-number", "v0=whatever"))
	})

	t.Run("skips verification without a signing secret", func(t *testing.T) {
		v := slack.NewVerifier("")
		gt.NoError(t, v.Verify(body, "0", ""))
	})
}
