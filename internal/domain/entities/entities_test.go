package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIdeaEvaluate(t *testing.T) {
	reviewer := uuid.New()

	idea := &Idea{Status: IdeaStatusSubmitted}
	err := idea.Evaluate(IdeaStatusAccepted, "great proposal", reviewer)

	assert.NoError(t, err)
	assert.Equal(t, IdeaStatusAccepted, idea.Status)
	assert.Equal(t, "great proposal", *idea.AdminComment)
	assert.Equal(t, reviewer, *idea.ReviewedByID)
}

func TestIdeaEvaluate_RequiresComment(t *testing.T) {
	idea := &Idea{Status: IdeaStatusSubmitted}

	err := idea.Evaluate(IdeaStatusRejected, "   ", uuid.New())

	assert.ErrorIs(t, err, ErrCommentRequired)
	assert.Equal(t, IdeaStatusSubmitted, idea.Status)
}

func TestIdeaEvaluate_RejectsNonVerdict(t *testing.T) {
	idea := &Idea{Status: IdeaStatusSubmitted}

	err := idea.Evaluate(IdeaStatusSubmitted, "comment", uuid.New())

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestIdeaCreatedDateKey(t *testing.T) {
	idea := &Idea{CreatedAt: time.Date(2024, time.March, 5, 23, 59, 0, 0, time.UTC)}

	assert.Equal(t, "2024-03-05", idea.CreatedDateKey())
}

func TestTodoTagList(t *testing.T) {
	tests := []struct {
		name string
		tags *string
		want []string
	}{
		{"nil", nil, nil},
		{"empty", strptr(""), nil},
		{"single", strptr("work"), []string{"work"}},
		{"trimmed", strptr(" work , home ,"), []string{"work", "home"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			todo := &Todo{Tags: tt.tags}
			assert.Equal(t, tt.want, todo.TagList())
		})
	}
}

func TestValidDateKey(t *testing.T) {
	assert.True(t, ValidDateKey("2024-02-29"))
	assert.False(t, ValidDateKey("2023-02-29"))
	assert.False(t, ValidDateKey("2024-3-5"))
	assert.False(t, ValidDateKey("05-03-2024"))
}

func strptr(s string) *string { return &s }
