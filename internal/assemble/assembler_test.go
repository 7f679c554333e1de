package assemble

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"drivemind/internal/artifact"
	"drivemind/internal/drive"
	drivemocks "drivemind/internal/drive/mocks"
	"drivemind/internal/extract"
	"drivemind/internal/filemeta"
	llmmocks "drivemind/internal/llm/mocks"

	"go.uber.org/mock/gomock"
)

func body(s string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(s))
}

// passthroughEmbedder wires the embedding mock so every vector is
// identical; ranking then preserves chunk order.
func passthroughEmbedder(ctrl *gomock.Controller) *llmmocks.MockEmbeddingService {
	embedder := llmmocks.NewMockEmbeddingService(ctrl)
	embedder.EXPECT().
		Embed(gomock.Any(), gomock.Any()).
		Return([]float32{1, 0}, nil).
		AnyTimes()
	embedder.EXPECT().
		EmbedBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, texts []string) ([][]float32, error) {
			vecs := make([][]float32, len(texts))
			for i := range texts {
				vecs[i] = []float32{1, 0}
			}
			return vecs, nil
		}).
		AnyTimes()
	return embedder
}

func TestBuildContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := drivemocks.NewMockProvider(ctrl)
	provider.EXPECT().
		Download(gomock.Any(), "f-txt").
		Return(body("plain text about budgets"), nil)
	provider.EXPECT().
		Export(gomock.Any(), "f-doc", drive.ExportMimeText).
		Return(body("exported doc content"), nil)

	a := NewAssembler(passthroughEmbedder(ctrl), extract.NewRegistry(nil), artifact.NewStore(t.TempDir()))

	records := []filemeta.Record{
		{ID: "f-txt", Name: "notes.txt", Type: filemeta.TypeText},
		{ID: "f-doc", Name: "Plan", Type: filemeta.TypeGoogleDoc},
	}
	contextStr, used, err := a.BuildContext(context.Background(), provider, "user-1", "budget plan", records)
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}

	if !strings.Contains(contextStr, "### notes.txt\nplain text about budgets") {
		t.Errorf("context missing first document:\n%s", contextStr)
	}
	if !strings.Contains(contextStr, "### Plan\nexported doc content") {
		t.Errorf("context missing exported document:\n%s", contextStr)
	}
	if len(used) != 2 {
		t.Errorf("used = %+v, want both records", used)
	}
}

func TestBuildContextUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := drivemocks.NewMockProvider(ctrl)
	provider.EXPECT().
		Download(gomock.Any(), "f-txt").
		Return(body("cached content"), nil).
		Times(1)

	a := NewAssembler(passthroughEmbedder(ctrl), extract.NewRegistry(nil), artifact.NewStore(t.TempDir()))
	records := []filemeta.Record{{ID: "f-txt", Name: "notes.txt", Type: filemeta.TypeText}}

	for i := 0; i < 2; i++ {
		contextStr, _, err := a.BuildContext(context.Background(), provider, "user-1", "q", records)
		if err != nil {
			t.Fatalf("BuildContext() error = %v", err)
		}
		if !strings.Contains(contextStr, "cached content") {
			t.Errorf("context = %q", contextStr)
		}
	}
}

func TestBuildContextSkipsUnavailableDocuments(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := drivemocks.NewMockProvider(ctrl)
	provider.EXPECT().
		Download(gomock.Any(), "f-gone").
		Return(nil, errors.New("404"))
	provider.EXPECT().
		Download(gomock.Any(), "f-ok").
		Return(body("surviving content"), nil)

	a := NewAssembler(passthroughEmbedder(ctrl), extract.NewRegistry(nil), artifact.NewStore(t.TempDir()))
	records := []filemeta.Record{
		{ID: "f-gone", Name: "gone.txt", Type: filemeta.TypeText},
		{ID: "f-ok", Name: "ok.txt", Type: filemeta.TypeText},
	}

	contextStr, used, err := a.BuildContext(context.Background(), provider, "user-1", "q", records)
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if strings.Contains(contextStr, "gone") {
		t.Errorf("context should not mention the unavailable document:\n%s", contextStr)
	}
	if len(used) != 1 || used[0].ID != "f-ok" {
		t.Errorf("used = %+v, want only f-ok", used)
	}
}

func TestBuildContextGoogleDocFallsBackToDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := drivemocks.NewMockProvider(ctrl)
	provider.EXPECT().
		Export(gomock.Any(), "f-doc", drive.ExportMimeText).
		Return(nil, errors.New("not a native doc"))
	provider.EXPECT().
		Download(gomock.Any(), "f-doc").
		Return(nil, errors.New("also gone"))

	a := NewAssembler(passthroughEmbedder(ctrl), extract.NewRegistry(nil), artifact.NewStore(t.TempDir()))
	records := []filemeta.Record{{ID: "f-doc", Name: "Plan", Type: filemeta.TypeGoogleDoc}}

	contextStr, used, err := a.BuildContext(context.Background(), provider, "user-1", "q", records)
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if contextStr != "" || len(used) != 0 {
		t.Errorf("context = %q, used = %+v, want nothing", contextStr, used)
	}
}
