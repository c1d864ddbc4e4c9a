package storage

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFeedDeliversToTableSubscribers(t *testing.T) {
	f := NewFeed()

	scores, cancel := f.Subscribe(TableScores)
	defer cancel()
	subs, cancelSubs := f.Subscribe(TableSubmissions)
	defer cancelSubs()

	f.Publish(Change{Table: TableScores, Op: OpInsert, ID: 7})

	select {
	case c := <-scores:
		if c.Op != OpInsert || c.ID != 7 {
			t.Errorf("change = %+v, want insert of row 7", c)
		}
	case <-time.After(time.Second):
		t.Fatal("scores subscriber got nothing")
	}

	select {
	case c := <-subs:
		t.Errorf("submissions subscriber got %+v for a scores change", c)
	default:
	}
}

func TestFeedNonBlockingDelivery(t *testing.T) {
	f := NewFeed()

	ch, cancel := f.Subscribe(TableScores)
	defer cancel()

	// Overflow the subscriber buffer; Publish must not block
	done := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			f.Publish(Change{Table: TableScores, Op: OpInsert, ID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a slow subscriber")
	}

	// The buffered prefix is still there in order
	first := <-ch
	if first.ID != 0 {
		t.Errorf("first buffered change ID = %d, want 0", first.ID)
	}
}

func TestFeedCancelClosesChannel(t *testing.T) {
	f := NewFeed()

	ch, cancel := f.Subscribe(TableScores)
	cancel()

	if _, ok := <-ch; ok {
		t.Error("channel still open after cancel")
	}

	// Publishing after cancel must not panic
	f.Publish(Change{Table: TableScores, Op: OpDelete})
}

func TestStoreWritesReachFeed(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	scores, cancel := store.Feed().Subscribe(TableScores)
	defer cancel()

	id, err := store.SaveScore("fishing", 42, true)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	select {
	case c := <-scores:
		if c.Op != OpInsert || c.ID != id {
			t.Errorf("change = %+v, want insert of row %d", c, id)
		}
	case <-time.After(time.Second):
		t.Fatal("no feed change after SaveScore")
	}

	if err := store.ClearScores("fishing"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	select {
	case c := <-scores:
		if c.Op != OpDelete {
			t.Errorf("change = %+v, want delete", c)
		}
	case <-time.After(time.Second):
		t.Fatal("no feed change after ClearScores")
	}
}
