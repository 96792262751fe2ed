package rest

import (
	"encoding/json"
	"net/http"
	"testing"

	"confessd/api"
	"confessd/feed/domain"
)

func seedPostID(t *testing.T, env *testEnv) string {
	t.Helper()
	w := doJSON(t, env.router, http.MethodPost, "/post/create", "token",
		api.CreatePostRequest{Content: "a post", IsAnonymous: false})
	if w.Code != http.StatusCreated {
		t.Fatalf("seed create status = %d: %s", w.Code, w.Body.String())
	}
	var resp api.CreatePostResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode seed response: %v", err)
	}
	return resp.Post.ID
}

func TestCreateComment_BotFlagged(t *testing.T) {
	provider := &fakeProvider{identity: &domain.Identity{ID: "user-1", Username: "u"}}
	env := setupEnv(t, provider, &fakeTrigger{}, &fakeGenerator{})
	postID := seedPostID(t, env)

	w := doJSON(t, env.router, http.MethodPost, "/post/comment/create", "",
		api.CommentProto{PostID: postID, Comment: "a generated reply", IsReplyBot: true})

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var resp api.CreateCommentResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Comment.IsReplyBot {
		t.Error("is_reply_bot should be true")
	}
	if resp.Comment.PostID != postID {
		t.Errorf("post_id = %q, want %q", resp.Comment.PostID, postID)
	}
}

func TestCreateComment_Empty(t *testing.T) {
	provider := &fakeProvider{identity: &domain.Identity{ID: "user-1", Username: "u"}}
	env := setupEnv(t, provider, &fakeTrigger{}, &fakeGenerator{})
	postID := seedPostID(t, env)

	w := doJSON(t, env.router, http.MethodPost, "/post/comment/create", "",
		api.CommentProto{PostID: postID, Comment: "   "})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "Comment cannot be empty." {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestGetComments(t *testing.T) {
	provider := &fakeProvider{identity: &domain.Identity{ID: "user-1", Username: "u"}}
	env := setupEnv(t, provider, &fakeTrigger{}, &fakeGenerator{})
	postID := seedPostID(t, env)

	for _, body := range []string{"first", "second"} {
		w := doJSON(t, env.router, http.MethodPost, "/post/comment/create", "token",
			api.CommentProto{PostID: postID, Comment: body})
		if w.Code != http.StatusCreated {
			t.Fatalf("comment create status = %d", w.Code)
		}
	}

	w := doJSON(t, env.router, http.MethodGet, "/post/comment/"+postID, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var comments []api.Comment
	if err := json.Unmarshal(w.Body.Bytes(), &comments); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("len = %d, want 2", len(comments))
	}
	if comments[0].Body != "first" {
		t.Errorf("comments[0] = %q, want oldest first", comments[0].Body)
	}
}
