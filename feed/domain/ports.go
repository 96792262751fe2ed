package domain

import "context"

// ReplyGenerator produces a follow-up comment for a post body using a
// generative-language backend configured with a fixed system instruction.
type ReplyGenerator interface {
	Generate(ctx context.Context, stimulus string) (string, error)
}

// CommentPublisher persists a generated reply as a bot-authored comment.
type CommentPublisher interface {
	PublishBotComment(ctx context.Context, postID, body string) error
}

// ReplyTrigger kicks off the reply-generation pipeline for a post.
// Implementations are expected to be invoked from a detached task; the
// returned error exists for logging only.
type ReplyTrigger interface {
	TriggerReply(ctx context.Context, postID, body string) error
}
