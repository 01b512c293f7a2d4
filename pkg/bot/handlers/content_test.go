package handlers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
)

// findRequestText returns the text field of the first recorded request
// whose path ends in the given Telegram method.
func findRequestText(t *testing.T, client *mockClient, method string) string {
	t.Helper()
	for _, req := range client.requests {
		if strings.HasSuffix(req.path, "/"+method) {
			return client.messageText(t, req)
		}
	}
	t.Fatalf("no %s request recorded", method)
	return ""
}

func TestHandleAyahIsStableWithinADay(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)
	setNow(t, time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC))

	client := newMockClient()
	b := newTestTelegramBot(t, client)
	update := newTestUpdate("Ayah of the day", 901)

	HandleAyah(context.Background(), b, update)
	first := client.lastMessageText(t)
	if !strings.Contains(first, "Ayah of the day:") {
		t.Fatalf("expected ayah header, got %q", first)
	}

	HandleAyah(context.Background(), b, update)
	if second := client.lastMessageText(t); second != first {
		t.Fatalf("expected the same ayah within one day, got %q then %q", first, second)
	}
}

func TestHandleDuasSendsMenu(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)

	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleDuas(context.Background(), b, newTestUpdate("Duas", 902))

	if got := client.lastMessageText(t); !strings.Contains(got, "Pick a dua category") {
		t.Fatalf("expected dua menu, got %q", got)
	}
	if path := client.lastRequestPath(t); !strings.HasSuffix(path, "/sendMessage") {
		t.Fatalf("expected a sendMessage request, got %s", path)
	}
}

func TestHandleDuaCallbackShowsDua(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)

	client := newMockClient()
	b := newTestTelegramBot(t, client)
	update := newTestCallbackUpdate("d:cat:morning:0", 903, 903, 42)

	HandleDuaCallback(context.Background(), b, update)

	got := findRequestText(t, client, "editMessageText")
	if !strings.Contains(got, "Upon waking") {
		t.Fatalf("expected the first morning dua, got %q", got)
	}
	if path := client.lastRequestPath(t); !strings.HasSuffix(path, "/answerCallbackQuery") {
		t.Fatalf("expected the callback to be answered last, got %s", path)
	}
}

func TestHandleDuaCallbackBackToMenu(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)

	client := newMockClient()
	b := newTestTelegramBot(t, client)
	update := newTestCallbackUpdate("d:menu", 904, 904, 42)

	HandleDuaCallback(context.Background(), b, update)

	got := findRequestText(t, client, "editMessageText")
	if !strings.Contains(got, "Pick a dua category") {
		t.Fatalf("expected the category menu, got %q", got)
	}
}

func TestHandleDuaCallbackRejectsGarbage(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)

	client := newMockClient()
	b := newTestTelegramBot(t, client)
	update := newTestCallbackUpdate("d:cat:../../etc:x", 905, 905, 42)

	HandleDuaCallback(context.Background(), b, update)

	for _, req := range client.requests {
		if strings.HasSuffix(req.path, "/editMessageText") {
			t.Fatalf("expected no edit for malformed callback data")
		}
	}
	if path := client.lastRequestPath(t); !strings.HasSuffix(path, "/answerCallbackQuery") {
		t.Fatalf("expected the callback to still be answered, got %s", path)
	}
}

func TestHandleDuaCallbackWrapsIndex(t *testing.T) {
	logger.SetLogLevel(logger.ERROR)

	client := newMockClient()
	b := newTestTelegramBot(t, client)
	update := newTestCallbackUpdate("d:cat:morning:99", 906, 906, 42)

	HandleDuaCallback(context.Background(), b, update)

	got := findRequestText(t, client, "editMessageText")
	if !strings.Contains(got, "Upon waking") {
		t.Fatalf("expected out-of-range index to wrap to the first dua, got %q", got)
	}
}
