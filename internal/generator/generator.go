package generator

import (
	"fmt"
	"math/rand"
	"time"

	"esl-arcade-service/internal/domain"
)

const (
	questionsPerLevel = 15
	levelCount        = 30

	baseTimeLimit    = 10
	readingTimeLimit = 20
	minTimeLimit     = 5

	doublePointsChance = 0.15
)

// Generator builds the published level list from the question bank.
// The random source is injected so generation is reproducible in tests.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator driven by the given source. A nil source falls
// back to a time-seeded one.
func New(rnd *rand.Rand) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd}
}

// curveEntry maps a level-number range onto a difficulty tier and category mix.
type curveEntry struct {
	maxLevel   int
	title      string
	difficulty domain.Difficulty
	categories []Category
}

var levelCurve = []curveEntry{
	{5, "Novice Basics", domain.DifficultyEasy, []Category{CategorySubjectQ, CategorySocial, CategoryVocab}},
	{10, "Slang & Grammar", domain.DifficultyMedium, []Category{CategorySlang, CategoryPrepQ, CategorySocial}},
	{15, "Indirect Master", domain.DifficultyMedium, []Category{CategoryIndirectQ, CategoryVocab}},
	{20, "Grammar Gauntlet", domain.DifficultyHard, []Category{CategoryIndirectQ, CategorySubjectQ, CategoryPrepQ}},
	{25, "Expert Mix", domain.DifficultyHard, []Category{CategoryVocab, CategorySlang, CategoryIndirectQ, CategorySocial}},
	{30, "Grandmaster Final", domain.DifficultyInsane, []Category{CategorySubjectQ, CategoryIndirectQ, CategoryPrepQ, CategoryVocab, CategorySocial, CategorySlang}},
}

func curveFor(number int) curveEntry {
	for _, entry := range levelCurve {
		if number <= entry.maxLevel {
			return entry
		}
	}
	return levelCurve[len(levelCurve)-1]
}

// Levels generates the published level list in ascending numeric order.
// A level whose category mix yields no templates is silently omitted; an
// empty level never reaches the menu.
func (g *Generator) Levels() []domain.Level {
	levels := make([]domain.Level, 0, levelCount)
	for number := 1; number <= levelCount; number++ {
		entry := curveFor(number)

		timeMod := 0
		if entry.difficulty == domain.DifficultyInsane {
			timeMod = -5
		}

		templates := g.Sample(questionsPerLevel, entry.categories)
		questions := make([]domain.Question, 0, len(templates))
		for idx, tmpl := range templates {
			questions = append(questions, g.BuildQuestion(tmpl, fmt.Sprintf("l%d-q%d", number, idx), timeMod))
		}
		if len(questions) == 0 {
			continue
		}

		levels = append(levels, domain.Level{
			ID:          fmt.Sprintf("arena-%d", number),
			Number:      number,
			Title:       fmt.Sprintf("%s %d", entry.title, number),
			Difficulty:  entry.difficulty,
			Description: describeCategories(entry.difficulty, entry.categories),
			Questions:   questions,
			XPReward:    100 + number*10,
		})
	}
	return levels
}

// Sample pools the templates for the requested categories, shuffles the pool
// and takes the first n without replacement. A short pool is returned as-is,
// never padded or repeated.
func (g *Generator) Sample(n int, cats []Category) []Template {
	var pool []Template
	for _, cat := range cats {
		for _, tmpl := range Bank(cat) {
			tmpl.Category = cat
			pool = append(pool, tmpl)
		}
	}
	if len(pool) == 0 {
		return nil
	}

	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if n > len(pool) {
		n = len(pool)
	}
	return pool[:n]
}

// BuildQuestion merges the correct answer with its distractors, shuffles the
// option order and locates the new index of the correct answer.
func (g *Generator) BuildQuestion(tmpl Template, id string, timeMod int) domain.Question {
	options := append([]string{tmpl.Correct}, tmpl.Distractors[:]...)
	g.rnd.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == tmpl.Correct {
			correctIndex = i
			break
		}
	}

	limit := baseTimeLimit
	if tmpl.Category == CategoryIndirectQ || len(tmpl.Text) > 50 {
		limit = readingTimeLimit
	}
	limit += timeMod
	if limit < minTimeLimit {
		limit = minTimeLimit
	}

	return domain.Question{
		ID:           id,
		Text:         tmpl.Text,
		Options:      options,
		CorrectIndex: correctIndex,
		TimeLimit:    limit,
		DoublePoints: g.rnd.Float64() < doublePointsChance,
	}
}

func describeCategories(diff domain.Difficulty, cats []Category) string {
	desc := string(diff) + " difficulty."
	for _, cat := range cats {
		desc += " " + string(cat)
	}
	return desc
}
