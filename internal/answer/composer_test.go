package answer

import (
	"context"
	"errors"
	"strings"
	"testing"

	answermocks "drivemind/internal/answer/mocks"
	"drivemind/internal/drive"
	drivemocks "drivemind/internal/drive/mocks"
	"drivemind/internal/filemeta"
	llmmocks "drivemind/internal/llm/mocks"
	"drivemind/internal/search"

	"go.uber.org/mock/gomock"
)

func TestComposeNoHits(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewComposer(llmmocks.NewMockCompletionService(ctrl), answermocks.NewMockContextBuilder(ctrl))

	got, err := c.Compose(context.Background(), drivemocks.NewMockProvider(ctrl), "u1", "anything", nil, nil)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !strings.Contains(got.Answer, "couldn't find anything relevant") {
		t.Errorf("Answer = %q", got.Answer)
	}
	if len(got.Sources) != 0 {
		t.Errorf("Sources = %+v, want empty", got.Sources)
	}
}

func TestComposeFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := drivemocks.NewMockProvider(ctrl)
	provider.EXPECT().
		ListChildren(gomock.Any(), "folder-1", folderChildLimit).
		Return([]drive.Listing{
			{Name: "Budget.xlsx", MimeType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
			{Name: "photos", MimeType: "application/vnd.google-apps.folder"},
		}, nil)

	c := NewComposer(llmmocks.NewMockCompletionService(ctrl), answermocks.NewMockContextBuilder(ctrl))
	hits := []search.Hit{{Record: filemeta.Record{ID: "folder-1", Name: "OphthMate", Type: filemeta.TypeFolder}}}

	got, err := c.Compose(context.Background(), provider, "u1", "show me the folder", hits, nil)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !strings.Contains(got.Answer, "📁 Folder **OphthMate** contents:") {
		t.Errorf("Answer = %q", got.Answer)
	}
	if !strings.Contains(got.Answer, "📊 Budget.xlsx") || !strings.Contains(got.Answer, "📁 photos") {
		t.Errorf("Answer missing icon-annotated children:\n%s", got.Answer)
	}
	if len(got.Sources) != 1 || got.Sources[0].ID != "folder-1" {
		t.Errorf("Sources = %+v, want the folder", got.Sources)
	}
}

func TestComposeEmptyFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := drivemocks.NewMockProvider(ctrl)
	provider.EXPECT().
		ListChildren(gomock.Any(), "folder-1", folderChildLimit).
		Return(nil, nil)

	c := NewComposer(llmmocks.NewMockCompletionService(ctrl), answermocks.NewMockContextBuilder(ctrl))
	hits := []search.Hit{{Record: filemeta.Record{ID: "folder-1", Name: "Empty", Type: filemeta.TypeFolder}}}

	got, err := c.Compose(context.Background(), provider, "u1", "q", hits, nil)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !strings.Contains(got.Answer, "*(folder is empty)*") {
		t.Errorf("Answer = %q", got.Answer)
	}
}

func TestComposeMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	c := NewComposer(llmmocks.NewMockCompletionService(ctrl), answermocks.NewMockContextBuilder(ctrl))
	hits := []search.Hit{{Record: filemeta.Record{
		ID:   "v1",
		Name: "birthday.mp4",
		Type: filemeta.TypeVideo,
		Raw:  []byte(`{"thumbnailLink": "https://thumbs.example/v1"}`),
	}}}

	got, err := c.Compose(context.Background(), drivemocks.NewMockProvider(ctrl), "u1", "open the video", hits, nil)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if got.Answer != "I found a video named **birthday.mp4**. Need anything else?" {
		t.Errorf("Answer = %q", got.Answer)
	}
	if len(got.Sources) != 1 || got.Sources[0].Thumb != "https://thumbs.example/v1" {
		t.Errorf("Sources = %+v, want thumbnail lifted from raw payload", got.Sources)
	}
}

func TestComposeTextGeneratesGroundedAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	textRec := filemeta.Record{ID: "d1", Name: "Plan.pdf", Type: filemeta.TypePDF}
	mediaRec := filemeta.Record{ID: "m1", Name: "cover.png", Type: filemeta.TypeImage}

	builder := answermocks.NewMockContextBuilder(ctrl)
	builder.EXPECT().
		BuildContext(gomock.Any(), gomock.Any(), "u1", "what is the plan", []filemeta.Record{textRec}).
		Return("### Plan.pdf\nplan details", []filemeta.Record{textRec}, nil)

	completer := llmmocks.NewMockCompletionService(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), generationMaxTokens).
		DoAndReturn(func(_ context.Context, prompt string, _ int) (string, error) {
			for _, want := range []string{
				"### Conversation so far ###",
				"USER: earlier question",
				"### Context ###\n### Plan.pdf\nplan details",
				"### Query ###\nwhat is the plan",
			} {
				if !strings.Contains(prompt, want) {
					t.Errorf("prompt missing %q:\n%s", want, prompt)
				}
			}
			return "The plan is X.", nil
		})

	c := NewComposer(completer, builder)
	hits := []search.Hit{{Record: textRec}, {Record: mediaRec}}
	history := []Turn{{Question: "earlier question", Answer: "earlier answer"}}

	got, err := c.Compose(context.Background(), drivemocks.NewMockProvider(ctrl), "u1", "what is the plan", hits, history)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	if !strings.HasPrefix(got.Answer, "The plan is X.") {
		t.Errorf("Answer = %q", got.Answer)
	}
	if !strings.Contains(got.Answer, "(Also matched media files: cover.png)") {
		t.Errorf("Answer missing media note: %q", got.Answer)
	}
	if len(got.Sources) != 2 || got.Sources[0].ID != "d1" || got.Sources[1].ID != "m1" {
		t.Errorf("Sources = %+v", got.Sources)
	}
}

func TestComposeTextFallsBackToNameList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	builder := answermocks.NewMockContextBuilder(ctrl)
	builder.EXPECT().
		BuildContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", nil, nil)

	c := NewComposer(llmmocks.NewMockCompletionService(ctrl), builder)
	hits := []search.Hit{
		{Record: filemeta.Record{ID: "a", Name: "one.pdf", Type: filemeta.TypePDF}},
		{Record: filemeta.Record{ID: "b", Name: "two.pdf", Type: filemeta.TypePDF}},
		{Record: filemeta.Record{ID: "c", Name: "three.pdf", Type: filemeta.TypePDF}},
		{Record: filemeta.Record{ID: "d", Name: "four.pdf", Type: filemeta.TypePDF}},
	}

	got, err := c.Compose(context.Background(), drivemocks.NewMockProvider(ctrl), "u1", "q", hits, nil)
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}
	for _, want := range []string{"- one.pdf", "- two.pdf", "- three.pdf"} {
		if !strings.Contains(got.Answer, want) {
			t.Errorf("Answer missing %q: %q", want, got.Answer)
		}
	}
	if strings.Contains(got.Answer, "four.pdf") {
		t.Errorf("Answer should list at most three names: %q", got.Answer)
	}
}

func TestComposeTextGenerationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	builder := answermocks.NewMockContextBuilder(ctrl)
	builder.EXPECT().
		BuildContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("some context", []filemeta.Record{{ID: "d1"}}, nil)

	completer := llmmocks.NewMockCompletionService(ctrl)
	completer.EXPECT().
		Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("model unavailable"))

	c := NewComposer(completer, builder)
	hits := []search.Hit{{Record: filemeta.Record{ID: "d1", Name: "a.pdf", Type: filemeta.TypePDF}}}

	if _, err := c.Compose(context.Background(), drivemocks.NewMockProvider(ctrl), "u1", "q", hits, nil); err == nil {
		t.Fatal("Compose() should propagate generation failure")
	}
}

func TestBuildPromptTruncatesHistory(t *testing.T) {
	history := make([]Turn, 8)
	for i := range history {
		history[i] = Turn{Question: strings.Repeat("q", i+1), Answer: "a"}
	}

	prompt := buildPrompt("query", "ctx", history)
	if strings.Contains(prompt, "USER: qqq\n") {
		t.Errorf("prompt kept a turn older than the last %d", historyTurns)
	}
	if !strings.Contains(prompt, "USER: qqqq\n") {
		t.Errorf("prompt dropped a turn inside the last %d", historyTurns)
	}
}
