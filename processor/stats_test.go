package processor_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MasterOfBinary/itemchain/processor"
)

func TestStatsProcessor(t *testing.T) {
	stats := processor.NewBasicStatsCollector()
	ctx := context.Background()

	evenOnly := processor.WrapWithStats(processor.Func(func(_ context.Context, item interface{}) (interface{}, error) {
		n := item.(int)
		switch {
		case n < 0:
			return nil, errors.New("negative")
		case n%2 != 0:
			return nil, nil
		}
		return n, nil
	}), stats)

	for _, n := range []int{2, 4, 6, 1, 3, -1} {
		_, _ = evenOnly.Process(ctx, n)
	}

	s := stats.GetStats()
	if s.ItemsProcessed != 3 {
		t.Errorf("expected 3 processed, got %d", s.ItemsProcessed)
	}
	if s.ItemsFiltered != 2 {
		t.Errorf("expected 2 filtered, got %d", s.ItemsFiltered)
	}
	if s.ItemErrors != 1 {
		t.Errorf("expected 1 error, got %d", s.ItemErrors)
	}
	if s.Items() != 6 {
		t.Errorf("expected 6 items, got %d", s.Items())
	}
	if rate := s.ErrorRate(); rate < 16.6 || rate > 16.7 {
		t.Errorf("expected error rate ~16.67, got %f", rate)
	}
	if s.MinItemTime > s.MaxItemTime {
		t.Errorf("min %v greater than max %v", s.MinItemTime, s.MaxItemTime)
	}
}

func TestStatsProcessor_NoCollector(t *testing.T) {
	p := &processor.StatsProcessor{Processor: processor.NewNil()}
	if result, err := p.Process(context.Background(), 1); result != nil || err != nil {
		t.Errorf("expected nil, nil; got %v, %v", result, err)
	}
}

func TestBasicStatsCollector_Durations(t *testing.T) {
	stats := processor.NewBasicStatsCollector()
	stats.RecordItemProcessed(30 * time.Millisecond)
	stats.RecordItemFiltered(10 * time.Millisecond)
	stats.RecordItemError(20 * time.Millisecond)

	s := stats.GetStats()
	if s.MinItemTime != 10*time.Millisecond {
		t.Errorf("expected min 10ms, got %v", s.MinItemTime)
	}
	if s.MaxItemTime != 30*time.Millisecond {
		t.Errorf("expected max 30ms, got %v", s.MaxItemTime)
	}
	if s.TotalProcessingTime != 60*time.Millisecond {
		t.Errorf("expected total 60ms, got %v", s.TotalProcessingTime)
	}
	if s.AverageItemTime() != 20*time.Millisecond {
		t.Errorf("expected average 20ms, got %v", s.AverageItemTime())
	}
}

func TestBasicStatsCollector_Concurrent(t *testing.T) {
	stats := processor.NewBasicStatsCollector()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stats.RecordItemProcessed(time.Millisecond)
		}()
	}
	wg.Wait()

	if n := stats.GetStats().ItemsProcessed; n != 100 {
		t.Errorf("expected 100 processed, got %d", n)
	}
}

func TestBasicStatsCollector_ConsistentSnapshot(t *testing.T) {
	stats := processor.NewBasicStatsCollector()
	done := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 250; j++ {
				switch (i + j) % 3 {
				case 0:
					stats.RecordItemProcessed(time.Millisecond)
				case 1:
					stats.RecordItemFiltered(time.Millisecond)
				default:
					stats.RecordItemError(time.Millisecond)
				}
			}
		}(i)
	}
	go func() {
		wg.Wait()
		close(done)
	}()

	for {
		s := stats.GetStats()
		if want := time.Duration(s.Items()) * time.Millisecond; s.TotalProcessingTime != want {
			t.Fatalf("snapshot has %d items but total time %v, want %v", s.Items(), s.TotalProcessingTime, want)
		}
		select {
		case <-done:
			if n := stats.GetStats().Items(); n != 1000 {
				t.Errorf("expected 1000 items, got %d", n)
			}
			return
		default:
		}
	}
}

func TestStats_Empty(t *testing.T) {
	var s processor.Stats
	if s.AverageItemTime() != 0 || s.ErrorRate() != 0 {
		t.Error("expected zero averages for empty stats")
	}

	noop := &processor.NoOpStatsCollector{}
	noop.RecordItemProcessed(time.Second)
	if s := noop.GetStats(); s.Items() != 0 {
		t.Error("NoOpStatsCollector should not record")
	}
}
