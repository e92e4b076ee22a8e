package chat

import (
	"sync"
	"testing"

	genai "github.com/google/generative-ai-go/genai"
)

func TestSessionModelLeavesBaseUntouched(t *testing.T) {
	base := &genai.GenerativeModel{}
	g := &GeminiModel{model: base}

	a := g.sessionModel("session A context")
	b := g.sessionModel("session B context")

	if base.SystemInstruction != nil {
		t.Fatal("base model must never carry a turn's system instruction")
	}
	if a == base || b == base {
		t.Fatal("per-turn model must be a copy, not the shared base")
	}
	if textOf(a.SystemInstruction) != "session A context" {
		t.Errorf("turn A instruction = %q", textOf(a.SystemInstruction))
	}
	if textOf(b.SystemInstruction) != "session B context" {
		t.Errorf("turn B instruction = %q", textOf(b.SystemInstruction))
	}
}

func TestSessionModelConcurrentTurns(t *testing.T) {
	g := &GeminiModel{model: &genai.GenerativeModel{}}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m := g.sessionModel("per-turn context")
			if textOf(m.SystemInstruction) != "per-turn context" {
				t.Error("turn saw a foreign system instruction")
			}
		}()
	}
	wg.Wait()

	if g.model.SystemInstruction != nil {
		t.Fatal("concurrent turns must not write the shared base model")
	}
}

func textOf(c *genai.Content) string {
	if c == nil || len(c.Parts) == 0 {
		return ""
	}
	if text, ok := c.Parts[0].(genai.Text); ok {
		return string(text)
	}
	return ""
}
