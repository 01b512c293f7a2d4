package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"
	"time"

	telegram "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/places"
	"github.com/aidosk/tg-prayer-reminder/pkg/prayer"
)

type recordedRequest struct {
	path        string
	method      string
	contentType string
	body        []byte
}

type mockClient struct {
	requests []recordedRequest
	response string
}

func newMockClient() *mockClient {
	return &mockClient{
		response: `{"ok":true,"result":{}}`,
	}
}

func (m *mockClient) Do(req *http.Request) (*http.Response, error) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if err := req.Body.Close(); err != nil {
		return nil, fmt.Errorf("failed to close request body: %w", err)
	}
	m.requests = append(m.requests, recordedRequest{
		path:        req.URL.Path,
		method:      req.Method,
		contentType: req.Header.Get("Content-Type"),
		body:        body,
	})

	resp := &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(m.response)),
		Header:     make(http.Header),
	}
	return resp, nil
}

func (m *mockClient) messageText(t *testing.T, req recordedRequest) string {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(req.contentType)
	if err != nil {
		t.Fatalf("failed to parse media type: %v", err)
	}
	if !strings.HasPrefix(mediaType, "multipart/") {
		t.Fatalf("unexpected media type: %s", mediaType)
	}

	reader := multipart.NewReader(bytes.NewReader(req.body), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("failed to read multipart part: %v", err)
		}
		if part.FormName() == "text" {
			data, err := io.ReadAll(part)
			if err != nil {
				t.Fatalf("failed to read text part: %v", err)
			}
			return string(data)
		}
	}
	t.Fatalf("text field not found in request")
	return ""
}

func (m *mockClient) lastMessageText(t *testing.T) string {
	t.Helper()
	if len(m.requests) == 0 {
		t.Fatalf("expected at least one recorded request")
	}
	return m.messageText(t, m.requests[len(m.requests)-1])
}

func (m *mockClient) lastRequestPath(t *testing.T) string {
	t.Helper()
	if len(m.requests) == 0 {
		t.Fatalf("expected at least one recorded request")
	}
	return m.requests[len(m.requests)-1].path
}

func newTestTelegramBot(t *testing.T, client *mockClient) *telegram.Bot {
	t.Helper()
	b, err := telegram.New("test-token",
		telegram.WithSkipGetMe(),
		telegram.WithHTTPClient(time.Second, client),
	)
	if err != nil {
		t.Fatalf("failed to create test bot: %v", err)
	}
	return b
}

func newTestUpdate(text string, userID int64) *models.Update {
	return &models.Update{
		Message: &models.Message{
			ID: 100,
			From: &models.User{
				ID: userID,
			},
			Chat: models.Chat{
				ID: userID,
			},
			Text: text,
		},
	}
}

func newTestCallbackUpdate(data string, userID, chatID int64, messageID int) *models.Update {
	return &models.Update{
		CallbackQuery: &models.CallbackQuery{
			ID:   "callback-1",
			From: models.User{ID: userID},
			Data: data,
			Message: models.MaybeInaccessibleMessage{
				Type: models.MaybeInaccessibleMessageTypeMessage,
				Message: &models.Message{
					ID: messageID,
					Chat: models.Chat{
						ID:   chatID,
						Type: models.ChatTypePrivate,
					},
				},
			},
		},
	}
}

// setNow pins the handlers' clock for a test.
func setNow(t *testing.T, fixed time.Time) {
	t.Helper()
	original := now
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = original })
}

type fakeTimingsProvider struct {
	timings prayer.Timings
	err     error
	calls   int
}

func (f *fakeTimingsProvider) Timings(ctx context.Context, city, country string) (prayer.Timings, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.timings, nil
}

type fakeMosqueFinder struct {
	found []places.Place
	err   error
}

func (f *fakeMosqueFinder) FindMosques(ctx context.Context, city string) ([]places.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.found, nil
}

type rescheduleCall struct {
	userID        int64
	city, country string
}

type fakeReminderScheduler struct {
	calls []rescheduleCall
	err   error
}

func (f *fakeReminderScheduler) Reschedule(ctx context.Context, userID int64, city, country string) error {
	f.calls = append(f.calls, rescheduleCall{userID: userID, city: city, country: country})
	return f.err
}

// setupFakes wires fake collaborators and restores the previous wiring
// when the test finishes.
func setupFakes(t *testing.T) (*fakeTimingsProvider, *fakeMosqueFinder, *fakeReminderScheduler) {
	t.Helper()
	prevPrayer, prevMosques, prevReminders := Prayer, Mosques, Reminders
	prevLocation, prevCountry := Location, DefaultCountry

	fp := &fakeTimingsProvider{timings: prayer.Timings{}}
	fm := &fakeMosqueFinder{}
	fr := &fakeReminderScheduler{}
	Setup(fp, fm, fr, time.UTC, "Kazakhstan")

	t.Cleanup(func() {
		Prayer, Mosques, Reminders = prevPrayer, prevMosques, prevReminders
		Location, DefaultCountry = prevLocation, prevCountry
	})
	return fp, fm, fr
}
