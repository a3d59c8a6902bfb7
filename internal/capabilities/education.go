package capabilities

import (
	"context"
	"strconv"

	"github.com/jonathan/resume-studio/internal/llm"
	"github.com/jonathan/resume-studio/internal/normalize"
	"github.com/jonathan/resume-studio/internal/types"
)

var lessonPlanCapability = register(Capability[LessonPlanInput, string]{
	Spec: textSpec("lesson_plan", "Lesson plan for a subject, topic and grade", llm.TierBasic),
	Prompt: template("education.json", "lesson_plan", func(in LessonPlanInput) map[string]string {
		return map[string]string{
			"Subject":  in.Subject,
			"Topic":    in.Topic,
			"Grade":    in.Grade,
			"Duration": strconv.Itoa(orDefaultInt(in.Minutes, 45)),
		}
	}),
	Decode: decodeText[LessonPlanInput],
})

var essayOutlineCapability = register(Capability[EssayOutlineInput, string]{
	Spec: textSpec("essay_outline", "Essay outline with thesis and sections", llm.TierBasic),
	Prompt: template("education.json", "essay_outline", func(in EssayOutlineInput) map[string]string {
		return map[string]string{
			"Topic":     in.Topic,
			"EssayType": orDefault(in.EssayType, "argumentative"),
			"WordCount": strconv.Itoa(orDefaultInt(in.WordCount, 1000)),
		}
	}),
	Decode: decodeText[EssayOutlineInput],
})

var studyPlanCapability = register(Capability[StudyPlanInput, string]{
	Spec: textSpec("study_plan", "Week-by-week study plan", llm.TierBasic),
	Prompt: template("education.json", "study_plan", func(in StudyPlanInput) map[string]string {
		return map[string]string{
			"Subject":      in.Subject,
			"Goal":         in.Goal,
			"Weeks":        strconv.Itoa(orDefaultInt(in.Weeks, 4)),
			"HoursPerWeek": strconv.Itoa(orDefaultInt(in.HoursPerWeek, 5)),
		}
	}),
	Decode: decodeText[StudyPlanInput],
})

var explainConceptCapability = register(Capability[ExplainInput, string]{
	Spec: textSpec("explain_concept", "Explain a concept at a given level", llm.TierBasic),
	Prompt: template("education.json", "explain_concept", func(in ExplainInput) map[string]string {
		return map[string]string{"Concept": in.Concept, "Level": orDefault(in.Level, "beginner")}
	}),
	Decode: decodeText[ExplainInput],
})

var rubricCapability = register(Capability[RubricInput, string]{
	Spec: textSpec("rubric", "Grading rubric for an assignment", llm.TierBasic),
	Prompt: template("education.json", "rubric", func(in RubricInput) map[string]string {
		return map[string]string{
			"Assignment": in.Assignment,
			"Grade":      orDefault(in.Grade, "Not specified"),
			"Criteria":   strconv.Itoa(orDefaultInt(in.Criteria, 4)),
		}
	}),
	Decode: decodeText[RubricInput],
})

var quizCapability = register(Capability[QuizInput, []types.QuizQuestion]{
	Spec: jsonSpec("quiz", "Multiple-choice quiz on a topic", ClassStructured, llm.TierBasic),
	Prompt: template("education.json", "quiz", func(in QuizInput) map[string]string {
		return map[string]string{
			"Topic":      in.Topic,
			"Difficulty": orDefault(in.Difficulty, "medium"),
			"Count":      strconv.Itoa(orDefaultInt(in.Count, 5)),
		}
	}),
	Decode: decodeWith[QuizInput]("quiz", normalize.DecodeQuiz),
})

var flashcardsCapability = register(Capability[FlashcardsInput, []types.Flashcard]{
	Spec: jsonSpec("flashcards", "Front/back study cards from material", ClassStructured, llm.TierBasic),
	Prompt: template("education.json", "flashcards", func(in FlashcardsInput) map[string]string {
		return map[string]string{
			"Material": in.Material,
			"Count":    strconv.Itoa(orDefaultInt(in.Count, 10)),
		}
	}),
	Decode: decodeWith[FlashcardsInput]("flashcards", normalize.DecodeFlashcards),
})

// LessonPlan writes a lesson plan for a topic and duration.
func (s *Service) LessonPlan(ctx context.Context, in LessonPlanInput) (string, error) {
	return run(ctx, s, lessonPlanCapability, in)
}

// EssayOutline outlines an essay at the requested length.
func (s *Service) EssayOutline(ctx context.Context, in EssayOutlineInput) (string, error) {
	return run(ctx, s, essayOutlineCapability, in)
}

// StudyPlan builds a week-by-week study plan.
func (s *Service) StudyPlan(ctx context.Context, in StudyPlanInput) (string, error) {
	return run(ctx, s, studyPlanCapability, in)
}

// ExplainConcept explains a concept at the requested level.
func (s *Service) ExplainConcept(ctx context.Context, in ExplainInput) (string, error) {
	return run(ctx, s, explainConceptCapability, in)
}

// Rubric writes a grading rubric for an assignment.
func (s *Service) Rubric(ctx context.Context, in RubricInput) (string, error) {
	return run(ctx, s, rubricCapability, in)
}

// Quiz generates multiple-choice questions. A correct answer given as option
// text is converted to its index.
func (s *Service) Quiz(ctx context.Context, in QuizInput) ([]types.QuizQuestion, error) {
	return run(ctx, s, quizCapability, in)
}

// Flashcards generates study cards.
func (s *Service) Flashcards(ctx context.Context, in FlashcardsInput) ([]types.Flashcard, error) {
	return run(ctx, s, flashcardsCapability, in)
}
