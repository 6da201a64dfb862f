package locale

// Key identifies a localized message or keyword.
type Key string

// Flashcard keywords and nouns.
const (
	FlashcardQuestionKeyword Key = "flashcard.keyword.question"
	FlashcardAnswerKeyword   Key = "flashcard.keyword.answer"
	QuestionNoun             Key = "common.question_singular"
	AnswerNoun               Key = "common.answer_singular"
)

// MCQ keywords.
const (
	MCQQuestionKeyword      Key = "mcq.keyword.question"
	MCQCorrectAnswerKeyword Key = "mcq.keyword.correct_answer"
	MCQExplanationKeyword   Key = "mcq.keyword.explanation"
)

// Flashcard parser messages.
const (
	ErrMissingAnswerForPreviousQuestion Key = "parser.error.missing_answer_for_previous_question"
	ErrQuestionMissingText              Key = "parser.error.question_missing_text"
	ErrAnswerMissingPreviousQuestion    Key = "parser.error.answer_missing_previous_question"
	ErrAnswerMissingText                Key = "parser.error.answer_missing_text"
	ErrUnrecognizedFormat               Key = "parser.error.unrecognized_format"
	ErrFirstLineMustBeQuestion          Key = "parser.error.first_line_must_be_question"
	ErrMustBeQuestion                   Key = "parser.error.must_be_question"
	ErrLastQuestionMissingAnswer        Key = "parser.error.last_question_missing_answer"
	ErrNoValidPairs                     Key = "parser.error.no_valid_pairs"
)

// MCQ parser messages.
const (
	ErrMCQIncompleteBlock      Key = "mcq.error.incomplete_block"
	ErrMCQExpectedQuestion     Key = "mcq.error.expected_question"
	ErrMCQMissingQuestion      Key = "mcq.error.missing_question"
	ErrMCQMissingOption        Key = "mcq.error.missing_option"
	ErrMCQInvalidCorrectAnswer Key = "mcq.error.invalid_correct_answer"
	ErrMCQMissingCorrectAnswer Key = "mcq.error.missing_correct_answer"
	ErrMCQNoMCQsFound          Key = "mcq.error.no_mcqs_found"
)

// Import outcome messages.
const (
	ImportPartialFlashcards Key = "import.partial_flashcards"
	ImportPartialMCQs       Key = "import.partial_mcqs"
	ImportNoCardsCreated    Key = "import.no_cards_created"
	ImportNoMCQsCreated     Key = "import.no_mcqs_created"
)

// Review and quiz labels.
const (
	ReviewCardLabel       Key = "review.card_label"
	ReviewShowAnswer      Key = "review.show_answer"
	ReviewHideAnswer      Key = "review.hide_answer"
	ReviewPrevious        Key = "review.previous"
	ReviewNext            Key = "review.next"
	ReviewNoCards         Key = "review.no_cards"
	QuizQuestionLabel     Key = "quiz.question_label"
	QuizScoreLabel        Key = "quiz.score_label"
	QuizSubmit            Key = "quiz.submit"
	QuizNextQuestion      Key = "quiz.next_question"
	QuizFeedbackCorrect   Key = "quiz.feedback_correct"
	QuizFeedbackIncorrect Key = "quiz.feedback_incorrect"
	QuizExplanationLabel  Key = "quiz.explanation_label"
	QuizCompleteTitle     Key = "quiz.complete_title"
	QuizFinalScore        Key = "quiz.final_score"
	QuizRestart           Key = "quiz.restart"
	QuizNoMCQs            Key = "quiz.no_mcqs"
	QuizSelectOption      Key = "quiz.select_option"
	CommonQuit            Key = "common.quit"
)
