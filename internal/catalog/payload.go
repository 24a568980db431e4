package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ecoamazonia/guardioes/internal/i18n"
)

// Payload is the game-specific content of a stage. The concrete type is
// fixed by the stage's GameType; consumers switch on it exhaustively.
type Payload interface {
	GameType() GameType
	isPayload()
}

// PuzzlePayload is a jigsaw with Grid[0] rows and Grid[1] columns.
type PuzzlePayload struct {
	Grid     [2]int `yaml:"grid"`
	ImageURL string `yaml:"imageUrl"`
}

// WordSearchPayload offers interchangeable word sets; one is picked per play.
// Words is used only when WordSets is absent.
type WordSearchPayload struct {
	WordSets []i18n.LocalizedList `yaml:"wordSets"`
	Words    i18n.LocalizedList   `yaml:"words"`
	Size     int                  `yaml:"size"`
}

// RiddlePayload accepts any of the listed answers.
type RiddlePayload struct {
	Riddle  i18n.LocalizedString `yaml:"riddle"`
	Answers i18n.LocalizedList   `yaml:"answers"`
}

// MemoryPayload lists the words that form the card pairs.
type MemoryPayload struct {
	Words i18n.LocalizedList `yaml:"words"`
}

// AdventurePayload is a scripted multi-phase quest.
type AdventurePayload struct {
	Phases []AdventurePhase `yaml:"phases"`
}

// AdventurePhase is one step of an adventure, ending in a choice.
type AdventurePhase struct {
	Element    i18n.LocalizedString `yaml:"element"`
	Title      i18n.LocalizedString `yaml:"title"`
	Intro      i18n.LocalizedString `yaml:"intro"`
	Background string               `yaml:"background"`
	Challenge  Challenge            `yaml:"challenge"`
}

// Challenge is a single question with feedback per option.
type Challenge struct {
	Question i18n.LocalizedString `yaml:"question"`
	Options  []ChallengeOption    `yaml:"options"`
}

// ChallengeOption is one answer of a Challenge.
type ChallengeOption struct {
	Text     i18n.LocalizedString `yaml:"text"`
	Correct  bool                 `yaml:"correct"`
	Feedback i18n.LocalizedString `yaml:"feedback"`
}

// RiverCleanupPayload lists the litter to sort into bins.
type RiverCleanupPayload struct {
	Items []CleanupItem        `yaml:"items"`
	Tip   i18n.LocalizedString `yaml:"tip"`
}

// CleanupBins are the bins a CleanupItem may name, in display order.
var CleanupBins = []string{"plastic", "metal", "paper", "organic"}

// CleanupItem is a piece of litter and the bin it belongs to.
type CleanupItem struct {
	ID   int                  `yaml:"id"`
	Name i18n.LocalizedString `yaml:"name"`
	Bin  string               `yaml:"bin"`
}

// AnimalRescuePayload lists the animals to free.
type AnimalRescuePayload struct {
	Animals []RescueAnimal `yaml:"animals"`
}

// RescueAnimal is one animal caught in litter.
type RescueAnimal struct {
	ID   int                  `yaml:"id"`
	Name i18n.LocalizedString `yaml:"name"`
}

// WordScramblePayload is a sentence whose words are shuffled.
type WordScramblePayload struct {
	Sentence i18n.LocalizedString `yaml:"sentence"`
}

// TermoPayload offers interchangeable secret words; one is picked per play
// and another whenever the player runs out of attempts.
type TermoPayload struct {
	WordList []SecretWord `yaml:"wordList"`
}

// SecretWord is a termo target with its hint.
type SecretWord struct {
	Word i18n.LocalizedString `yaml:"word"`
	Hint i18n.LocalizedString `yaml:"hint"`
}

// InteractiveQuizPayload requires CorrectNeeded right answers to a stream
// of generated questions.
type InteractiveQuizPayload struct {
	CorrectNeeded int `yaml:"correctNeeded"`
}

func (PuzzlePayload) GameType() GameType          { return GamePuzzle }
func (WordSearchPayload) GameType() GameType      { return GameWordSearch }
func (RiddlePayload) GameType() GameType          { return GameRiddle }
func (MemoryPayload) GameType() GameType          { return GameMemory }
func (AdventurePayload) GameType() GameType       { return GameAdventure }
func (RiverCleanupPayload) GameType() GameType    { return GameRiverCleanup }
func (AnimalRescuePayload) GameType() GameType    { return GameAnimalRescue }
func (WordScramblePayload) GameType() GameType    { return GameWordScramble }
func (TermoPayload) GameType() GameType           { return GameTermo }
func (InteractiveQuizPayload) GameType() GameType { return GameInteractiveQuiz }

func (PuzzlePayload) isPayload()          {}
func (WordSearchPayload) isPayload()      {}
func (RiddlePayload) isPayload()          {}
func (MemoryPayload) isPayload()          {}
func (AdventurePayload) isPayload()       {}
func (RiverCleanupPayload) isPayload()    {}
func (AnimalRescuePayload) isPayload()    {}
func (WordScramblePayload) isPayload()    {}
func (TermoPayload) isPayload()           {}
func (InteractiveQuizPayload) isPayload() {}

// defaultCorrectNeeded is the interactive quiz target when none is given.
const defaultCorrectNeeded = 3

// stageDoc is the on-disk shape of a stage.
type stageDoc struct {
	Stage        int                  `yaml:"stage"`
	Type         GameType             `yaml:"type"`
	Title        i18n.LocalizedString `yaml:"title"`
	Instructions i18n.LocalizedString `yaml:"instructions"`
	Points       int                  `yaml:"points"`
	Data         yaml.Node            `yaml:"data"`
}

// UnmarshalYAML decodes the stage and its data block into the payload
// type selected by the stage's type tag.
func (s *Stage) UnmarshalYAML(value *yaml.Node) error {
	var doc stageDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	payload, err := decodePayload(doc.Type, &doc.Data)
	if err != nil {
		return fmt.Errorf("stage %d: %w", doc.Stage, err)
	}

	*s = Stage{
		Number:       doc.Stage,
		Type:         doc.Type,
		Title:        doc.Title,
		Instructions: doc.Instructions,
		Points:       doc.Points,
		Payload:      payload,
	}
	return nil
}

func decodePayload(t GameType, data *yaml.Node) (Payload, error) {
	switch t {
	case GamePuzzle:
		return decodeInto[PuzzlePayload](data)
	case GameWordSearch:
		return decodeInto[WordSearchPayload](data)
	case GameRiddle:
		return decodeInto[RiddlePayload](data)
	case GameMemory:
		return decodeInto[MemoryPayload](data)
	case GameAdventure:
		return decodeInto[AdventurePayload](data)
	case GameRiverCleanup:
		return decodeInto[RiverCleanupPayload](data)
	case GameAnimalRescue:
		return decodeInto[AnimalRescuePayload](data)
	case GameWordScramble:
		return decodeInto[WordScramblePayload](data)
	case GameTermo:
		return decodeInto[TermoPayload](data)
	case GameInteractiveQuiz:
		p, err := decodeInto[InteractiveQuizPayload](data)
		if err != nil {
			return nil, err
		}
		if p.CorrectNeeded <= 0 {
			p.CorrectNeeded = defaultCorrectNeeded
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown game type %q", t)
	}
}

// decodeInto decodes an optional data block into a payload value.
func decodeInto[P Payload](data *yaml.Node) (P, error) {
	var p P
	if data == nil || data.Kind == 0 {
		return p, nil
	}
	if err := data.Decode(&p); err != nil {
		return p, fmt.Errorf("decode %s data: %w", p.GameType(), err)
	}
	return p, nil
}
