package application

import (
	"context"

	"confessd/feed/domain"

	"github.com/rs/zerolog/log"
)

// ReplyService turns a post's text into a bot comment: generate a
// reply, then publish it through the comment-creation endpoint.
type ReplyService struct {
	generator domain.ReplyGenerator
	publisher domain.CommentPublisher
}

func NewReplyService(generator domain.ReplyGenerator, publisher domain.CommentPublisher) *ReplyService {
	return &ReplyService{
		generator: generator,
		publisher: publisher,
	}
}

// Reply generates a reply for the post and publishes it as a
// bot-authored comment. Generation failure aborts the attempt; a
// publish failure is logged but the generated text is still returned,
// since the original caller only consumes the reply itself.
func (s *ReplyService) Reply(ctx context.Context, postID, stimulus string) (string, error) {
	text, err := s.generator.Generate(ctx, stimulus)
	if err != nil {
		return "", err
	}

	if err := s.publisher.PublishBotComment(ctx, postID, text); err != nil {
		log.Error().Err(err).Str("postID", postID).Msg("Failed to publish bot comment")
	}

	return text, nil
}
