package persistence

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/yadi09/Slide-Editor-Foundation/internal/models"
	"github.com/yadi09/Slide-Editor-Foundation/internal/storage"
)

func libraryFixture(t *testing.T) (*Repository, models.Slide) {
	t.Helper()
	return NewRepository(storage.NewMemoryStore()), liveSlide()
}

func liveSlide() models.Slide {
	return models.Slide{
		ID:              "live-slide",
		BackgroundColor: "#fafafa",
		Elements: []models.SlideElement{
			{ID: "live-el", Type: models.ElementText, X: 5, Y: 5, Width: 200, Height: 40, Content: "Hello"},
		},
	}
}

// slowStore stretches the gap between reading the library and writing it
// back, so callers that are not serialized would interleave.
type slowStore struct {
	storage.Store
}

func (s *slowStore) Get(key string) ([]byte, bool, error) {
	time.Sleep(2 * time.Millisecond)
	return s.Store.Get(key)
}

func TestSaveSlideAssignsFreshIDs(t *testing.T) {
	repo, slide := libraryFixture(t)

	saved, err := repo.SaveSlide(slide, "Intro", "")
	if err != nil {
		t.Fatalf("save slide: %v", err)
	}
	if saved.ID == "" || saved.Name != "Intro" {
		t.Fatalf("unexpected saved slide: %+v", saved)
	}
	if saved.Slide.ID == slide.ID {
		t.Error("saved copy kept the live slide id")
	}
	if saved.Slide.Elements[0].ID == slide.Elements[0].ID {
		t.Error("saved copy kept a live element id")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("createdAt not set")
	}
}

func TestSaveSlideCopiesAreIndependent(t *testing.T) {
	repo, slide := libraryFixture(t)

	saved, err := repo.SaveSlide(slide, "Intro", "")
	if err != nil {
		t.Fatalf("save slide: %v", err)
	}

	// mutate the live slide after saving
	slide.Elements[0].Content = "Changed"

	reloaded, ok := repo.SavedSlideByID(saved.ID)
	if !ok {
		t.Fatal("saved slide not found")
	}
	if reloaded.Slide.Elements[0].Content != "Hello" {
		t.Fatalf("saved copy changed with the live slide: %q", reloaded.Slide.Elements[0].Content)
	}
}

func TestSaveSlideNameCollision(t *testing.T) {
	repo, slide := libraryFixture(t)

	if _, err := repo.SaveSlide(slide, "Intro", ""); err != nil {
		t.Fatalf("first save: %v", err)
	}
	_, err := repo.SaveSlide(slide, "Intro", "")
	if !errors.Is(err, ErrNameTaken) {
		t.Fatalf("second save error = %v, want ErrNameTaken", err)
	}

	// the stored list must be untouched by the failed save
	saved := repo.SavedSlides()
	if len(saved) != 1 {
		t.Fatalf("library has %d entries after rejected save, want 1", len(saved))
	}
}

func TestConcurrentSavesUnderOneNameAdmitOne(t *testing.T) {
	repo := NewRepository(&slowStore{Store: storage.NewMemoryStore()})
	slide := liveSlide()

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.SaveSlide(slide, "Intro", "")
		}(i)
	}
	wg.Wait()

	var rejected int
	for _, err := range errs {
		if err != nil {
			if !errors.Is(err, ErrNameTaken) {
				t.Fatalf("save error = %v, want ErrNameTaken", err)
			}
			rejected++
		}
	}
	if rejected != 1 {
		t.Fatalf("%d of 2 concurrent saves rejected, want exactly 1", rejected)
	}
	if got := len(repo.SavedSlides()); got != 1 {
		t.Fatalf("library has %d entries, want 1", got)
	}
}

func TestConcurrentSavesUnderDistinctNamesKeepAll(t *testing.T) {
	repo := NewRepository(&slowStore{Store: storage.NewMemoryStore()})
	slide := liveSlide()

	names := []string{"One", "Two", "Three", "Four"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if _, err := repo.SaveSlide(slide, name, ""); err != nil {
				t.Errorf("save %q: %v", name, err)
			}
		}(name)
	}
	wg.Wait()

	if got := len(repo.SavedSlides()); got != len(names) {
		t.Fatalf("library has %d entries after %d concurrent saves", got, len(names))
	}
}

func TestSaveSlideRequiresName(t *testing.T) {
	repo, slide := libraryFixture(t)
	if _, err := repo.SaveSlide(slide, "", ""); err == nil {
		t.Fatal("empty name accepted")
	}
}

func TestDeleteSavedSlide(t *testing.T) {
	repo, slide := libraryFixture(t)

	first, err := repo.SaveSlide(slide, "One", "")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := repo.SaveSlide(slide, "Two", ""); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.DeleteSavedSlide(first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	saved := repo.SavedSlides()
	if len(saved) != 1 || saved[0].Name != "Two" {
		t.Fatalf("library after delete: %+v", saved)
	}

	// deleting an unknown id is a no-op
	if err := repo.DeleteSavedSlide("nope"); err != nil {
		t.Fatalf("delete unknown id: %v", err)
	}
	if len(repo.SavedSlides()) != 1 {
		t.Fatal("delete of unknown id changed the library")
	}
}

func TestSavedSlidesCorruptDataFallsBackToEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	if err := store.Set("saved-slides", []byte(`{broken`)); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	repo := NewRepository(store)

	saved := repo.SavedSlides()
	if saved == nil || len(saved) != 0 {
		t.Fatalf("corrupt library should read as empty, got %v", saved)
	}
}

func TestSaveSlideKeepsThumbnail(t *testing.T) {
	repo, slide := libraryFixture(t)

	saved, err := repo.SaveSlide(slide, "Cover", "data:image/png;base64,AAA=")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	reloaded, ok := repo.SavedSlideByID(saved.ID)
	if !ok || reloaded.Thumbnail != "data:image/png;base64,AAA=" {
		t.Fatalf("thumbnail not persisted: %+v", reloaded)
	}
}
