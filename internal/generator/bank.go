package generator

// Category identifies a topical pool of question templates.
type Category string

const (
	CategorySubjectQ  Category = "subject_q"
	CategoryIndirectQ Category = "indirect_q"
	CategoryPrepQ     Category = "prep_q"
	CategoryVocab     Category = "vocab"
	CategorySocial    Category = "social"
	CategorySlang     Category = "slang"
)

// Template is a raw question before option shuffling: the correct answer is
// kept separate from its distractors until a Question is built.
type Template struct {
	Text        string
	Correct     string
	Distractors [3]string
	Category    Category
}

// questionBank holds the unit's template pools, keyed by category.
var questionBank = map[Category][]Template{
	CategorySubjectQ: {
		{Text: "Subject Q: Who ___ (call) you?", Correct: "called", Distractors: [3]string{"did call", "does call", "calling"}},
		{Text: "Subject Q: What ___ (happen) next?", Correct: "happened", Distractors: [3]string{"did happen", "does happen", "happening"}},
		{Text: "Subject Q: Who ___ (break) the vase?", Correct: "broke", Distractors: [3]string{"did break", "did broke", "broken"}},
		{Text: "Subject Q: Which car ___ (cost) more?", Correct: "cost", Distractors: [3]string{"did cost", "does cost", "costed"}},
		{Text: "Subject Q: Who ___ (want) ice cream?", Correct: "wants", Distractors: [3]string{"does want", "do want", "wanting"}},
		{Text: "Subject Q: What ___ (fall) off the shelf?", Correct: "fell", Distractors: [3]string{"did fall", "fall", "fallen"}},
	},
	CategoryIndirectQ: {
		{Text: "Indirect: 'Where is he?'", Correct: "Do you know where he is?", Distractors: [3]string{"Do you know where is he?", "Where he is?", "Do you know where is?"}},
		{Text: "Indirect: 'Why did she leave?'", Correct: "Can you tell me why she left?", Distractors: [3]string{"Can you tell me why did she leave?", "Can you tell me why she did leave?", "Why she left?"}},
		{Text: "Indirect: 'What time does it start?'", Correct: "Do you know what time it starts?", Distractors: [3]string{"Do you know what time does it start?", "Do you know what time starts it?", "What time starts?"}},
		{Text: "Indirect: 'Who is that?'", Correct: "I wonder who that is.", Distractors: [3]string{"I wonder who is that.", "I wonder who is.", "Who is that I wonder."}},
		{Text: "Indirect: 'Did he call?'", Correct: "Do you know if he called?", Distractors: [3]string{"Do you know did he call?", "Do you know if he call?", "Do you know he called?"}},
		{Text: "Indirect: 'How much is it?'", Correct: "Could you tell me how much it is?", Distractors: [3]string{"Could you tell me how much is it?", "How much it is?", "Tell me how much is."}},
	},
	CategoryPrepQ: {
		{Text: "Fix: 'About what are you thinking?'", Correct: "What are you thinking about?", Distractors: [3]string{"What about you thinking?", "Thinking about what are you?", "About what you think?"}},
		{Text: "Fix: 'For who are you waiting?'", Correct: "Who are you waiting for?", Distractors: [3]string{"Who you waiting for?", "For who you wait?", "Who for you waiting?"}},
		{Text: "Fix: 'To where are you going?'", Correct: "Where are you going (to)?", Distractors: [3]string{"Where going you to?", "To where you going?", "Where you go?"}},
		{Text: "Complete: Who are you listening ___?", Correct: "to", Distractors: [3]string{"at", "on", "for"}},
		{Text: "Complete: What are you afraid ___?", Correct: "of", Distractors: [3]string{"by", "on", "at"}},
		{Text: "Complete: Who does this belong ___?", Correct: "to", Distractors: [3]string{"at", "with", "for"}},
	},
	CategoryVocab: {
		{Text: "Meaning: 'Hit it off'", Correct: "Like each other immediately", Distractors: [3]string{"Hit someone", "Leave quickly", "Argue loudly"}},
		{Text: "Meaning: 'Put your foot in it'", Correct: "Say something embarrassing", Distractors: [3]string{"Step in mud", "Walk fast", "Kick a ball"}},
		{Text: "Meaning: 'Row'", Correct: "Noisy argument", Distractors: [3]string{"Boat trip", "Line of people", "Friendly chat"}},
		{Text: "Meaning: 'See eye to eye'", Correct: "Agree with someone", Distractors: [3]string{"Stare contest", "Wear glasses", "Disagree"}},
		{Text: "Meaning: 'Cold shoulder'", Correct: "Ignore someone", Distractors: [3]string{"Frozen arm", "Winter coat", "Friendly hug"}},
		{Text: "Meaning: 'Spill the tea'", Correct: "Gossip / Tell the truth", Distractors: [3]string{"Make a mess", "Drink tea", "Cook dinner"}},
	},
	CategorySocial: {
		{Text: "Rude or Polite: Checking phone while listening", Correct: "Rude", Distractors: [3]string{"Polite", "Normal", "Professional"}},
		{Text: "Rude or Polite: Asking someone's salary immediately", Correct: "Rude", Distractors: [3]string{"Polite", "Friendly", "Standard"}},
		{Text: "Rude or Polite: Remembering someone's name", Correct: "Polite", Distractors: [3]string{"Rude", "Creepy", "Unnecessary"}},
		{Text: "Best response: 'I failed my test.'", Correct: "Oh no, I'm sorry to hear that.", Distractors: [3]string{"Haha, loser.", "Did you study?", "I passed mine."}},
		{Text: "Best response: 'I just got promoted!'", Correct: "Congratulations! That's amazing!", Distractors: [3]string{"About time.", "How much money?", "Okay."}},
	},
	CategorySlang: {
		{Text: "Slang: 'No Cap'", Correct: "No lie / For real", Distractors: [3]string{"No hat", "Quiet", "Stop talking"}},
		{Text: "Slang: 'Ghosting'", Correct: "Ignoring messages suddenly", Distractors: [3]string{"Scaring people", "Dying", "Being pale"}},
		{Text: "Slang: 'Simp'", Correct: "Overly desperate for attention", Distractors: [3]string{"Simple person", "Simpson character", "Smart person"}},
		{Text: "Slang: 'Rent free'", Correct: "Stuck in your head", Distractors: [3]string{"Free house", "No money", "Homeless"}},
		{Text: "Slang: 'Rizz'", Correct: "Charisma / Flirting skill", Distractors: [3]string{"Rice", "Resting", "Rising up"}},
		{Text: "Slang: 'Sus'", Correct: "Suspicious", Distractors: [3]string{"Sustainable", "Sussudio", "Success"}},
		{Text: "Slang: 'Bet'", Correct: "Yes / Agreed", Distractors: [3]string{"Gambling", "No way", "Maybe"}},
	},
}

// Bank returns the template pool for a category; nil for unknown categories.
func Bank(cat Category) []Template {
	return questionBank[cat]
}
