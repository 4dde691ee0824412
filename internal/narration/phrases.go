package narration

import (
	"hoops-trivia/internal/random"
)

var (
	correctLines   = []string{"Correct!", "Yes!", "Nice!", "Great!", "Right!"}
	incorrectLines = []string{"Try again!", "Not quite!", "Oops!", "Almost!"}
)

func celebrationLines(name string) []string {
	lines := []string{
		"You're on fire!",
		"Nothing but net!",
		"Slam dunk!",
		"You're a superstar!",
		"MVP! MVP!",
		"Swish!",
	}
	if name != "" {
		return append(lines, "Amazing, "+name+"!", "Great job, "+name+"!")
	}
	return append(lines, "Amazing!", "Great job!")
}

// Phrasebook picks the wording and rate for each event.
type Phrasebook struct {
	playerName string
	src        random.Source
}

func NewPhrasebook(playerName string, src random.Source) *Phrasebook {
	if src == nil {
		src = random.Default
	}
	return &Phrasebook{playerName: playerName, src: src}
}

func (b *Phrasebook) Welcome() Phrase {
	text := "Welcome to Basketball Trivia! Let's play!"
	if b.playerName != "" {
		text = "Welcome to " + b.playerName + "'s Basketball Trivia! Let's play!"
	}
	return Phrase{Kind: KindWelcome, Text: text, Rate: 0.9}
}

func (b *Phrasebook) Prompt(text string) Phrase {
	return Phrase{Kind: KindPrompt, Text: text, Rate: 0.85}
}

func (b *Phrasebook) Hint(name string) Phrase {
	return Phrase{Kind: KindHint, Text: name, Rate: 0.85}
}

func (b *Phrasebook) Correct() Phrase {
	return Phrase{Kind: KindCorrect, Text: b.pick(correctLines), Rate: 1.1}
}

func (b *Phrasebook) Incorrect() Phrase {
	return Phrase{Kind: KindIncorrect, Text: b.pick(incorrectLines), Rate: 1}
}

func (b *Phrasebook) Celebration() Phrase {
	return Phrase{Kind: KindCelebration, Text: b.pick(celebrationLines(b.playerName)), Rate: 1}
}

func (b *Phrasebook) pick(lines []string) string {
	line, err := random.PickOne(b.src, lines)
	if err != nil {
		return ""
	}
	return line
}
