package domain

// StudyMode selects which cards a study session draws from.
type StudyMode string

const (
	StudyModeReview StudyMode = "REVIEW"
	StudyModeLearn  StudyMode = "LEARN"
	StudyModeMixed  StudyMode = "MIXED"
)

func (m StudyMode) String() string { return string(m) }

func (m StudyMode) IsValid() bool {
	switch m {
	case StudyModeReview, StudyModeLearn, StudyModeMixed:
		return true
	}
	return false
}

// SessionStatus represents the state of a study session.
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusPaused    SessionStatus = "PAUSED"
)

func (s SessionStatus) String() string { return string(s) }

func (s SessionStatus) IsValid() bool {
	switch s {
	case SessionStatusActive, SessionStatusCompleted, SessionStatusPaused:
		return true
	}
	return false
}

// DifficultyFelt is the optional self-reported difficulty attached to a review.
type DifficultyFelt string

const (
	DifficultyVeryEasy DifficultyFelt = "VERY_EASY"
	DifficultyEasy     DifficultyFelt = "EASY"
	DifficultyNormal   DifficultyFelt = "NORMAL"
	DifficultyHard     DifficultyFelt = "HARD"
	DifficultyVeryHard DifficultyFelt = "VERY_HARD"
)

func (d DifficultyFelt) String() string { return string(d) }

func (d DifficultyFelt) IsValid() bool {
	switch d {
	case DifficultyVeryEasy, DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyVeryHard:
		return true
	}
	return false
}

// FlashcardSource records how a flashcard was created.
type FlashcardSource string

const (
	FlashcardSourceManual      FlashcardSource = "MANUAL"
	FlashcardSourceAIGenerated FlashcardSource = "AI_GENERATED"
)

func (s FlashcardSource) String() string { return string(s) }

func (s FlashcardSource) IsValid() bool {
	switch s {
	case FlashcardSourceManual, FlashcardSourceAIGenerated:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeCollection   EntityType = "COLLECTION"
	EntityTypeFlashcard    EntityType = "FLASHCARD"
	EntityTypeStudySession EntityType = "STUDY_SESSION"
	EntityTypeCategory     EntityType = "CATEGORY"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeCollection, EntityTypeFlashcard, EntityTypeStudySession, EntityTypeCategory:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
	AuditActionDelete AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
