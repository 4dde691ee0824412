package narration

import (
	"context"
	"testing"
	"time"
)

func TestAsyncDoesNotBlockOnSlowNarrator(t *testing.T) {
	release := make(chan struct{})
	spoken := make(chan Phrase, 16)
	slow := NarratorFunc(func(_ context.Context, p Phrase) {
		<-release
		spoken <- p
	})
	a := NewAsync(slow, 2, nil)
	defer a.Close()

	returned := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			a.Speak(context.Background(), Phrase{Kind: KindCorrect, Text: string(rune('a' + i))})
		}
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(2 * time.Second):
		t.Fatalf("Speak blocked behind a slow narrator")
	}

	close(release)
	var got []string
	deadline := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case p := <-spoken:
			got = append(got, p.Text)
		case <-deadline:
			t.Fatalf("queued phrases not spoken, got %v", got)
		}
	}
	if got[0] != "a" {
		t.Fatalf("expected the first phrase spoken first, got %v", got)
	}
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("phrases out of order: %v", got)
		}
	}
}

func TestAsyncStopsAfterClose(t *testing.T) {
	rec := &Recorder{}
	a := NewAsync(rec, 4, nil)
	a.Speak(context.Background(), Phrase{Kind: KindPrompt, Text: "first"})
	waitSpoken(t, rec, 1)

	a.Close()
	a.Close()
	a.Speak(context.Background(), Phrase{Kind: KindPrompt, Text: "late"})
	time.Sleep(20 * time.Millisecond)
	if n := len(rec.Phrases()); n != 1 {
		t.Fatalf("expected nothing spoken after close, got %d phrases", n)
	}
}

func TestAsyncSkipsEmptyAndSurvivesPanics(t *testing.T) {
	rec := &Recorder{}
	calls := 0
	flaky := NarratorFunc(func(ctx context.Context, p Phrase) {
		calls++
		if calls == 1 {
			panic("tts backend down")
		}
		rec.Speak(ctx, p)
	})
	a := NewAsync(flaky, 4, nil)
	defer a.Close()

	a.Speak(context.Background(), Phrase{Kind: KindPrompt, Text: ""})
	a.Speak(context.Background(), Phrase{Kind: KindPrompt, Text: "boom"})
	a.Speak(context.Background(), Phrase{Kind: KindPrompt, Text: "ok"})
	waitSpoken(t, rec, 1)
	if got := rec.Phrases()[0].Text; got != "ok" {
		t.Fatalf("expected the phrase after the panic, got %q", got)
	}
}

func waitSpoken(t *testing.T, rec *Recorder, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for len(rec.Phrases()) < n {
		if time.Now().After(deadline) {
			t.Fatalf("expected %d phrases, got %d", n, len(rec.Phrases()))
		}
		time.Sleep(5 * time.Millisecond)
	}
}
