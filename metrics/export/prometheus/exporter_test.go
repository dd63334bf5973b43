package prometheus

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	goCell "github.com/MrEthical07/goCell"
)

type fakeSource struct {
	snapshot goCell.MetricsSnapshot
	dropped  uint64
}

func (f fakeSource) MetricsSnapshot() goCell.MetricsSnapshot { return f.snapshot }
func (f fakeSource) AuditDropped() uint64                    { return f.dropped }

func TestRenderEmptyWhenMetricsDisabled(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goCell.MetricsSnapshot{
			Counters: map[goCell.MetricID]uint64{},
		},
		dropped: 0,
	})

	if got := exp.Render(); got != "" {
		t.Fatalf("expected empty output for disabled metrics, got:\n%s", got)
	}
}

func TestRenderIncludesCounters(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goCell.MetricsSnapshot{
			Counters: map[goCell.MetricID]uint64{
				goCell.MetricSharedBorrow: 7,
				goCell.MetricCellRead:     12,
			},
		},
		dropped: 2,
	})

	out := exp.Render()
	if !strings.Contains(out, "gocell_shared_borrow_total 7") {
		t.Fatalf("expected shared borrow counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gocell_cell_read_total 12") {
		t.Fatalf("expected cell read counter in output, got:\n%s", out)
	}
	if !strings.Contains(out, "gocell_audit_dropped_total 2") {
		t.Fatalf("expected audit dropped counter in output, got:\n%s", out)
	}
}

func TestExporterReadsLiveToken(t *testing.T) {
	out := goCell.WithToken(func(tok *goCell.Token) string {
		cell, err := goCell.NewCell(tok, 0)
		if err != nil {
			t.Fatalf("NewCell failed: %v", err)
		}
		err = tok.Do(func(acc *goCell.SharedAccessor) error {
			_, err := cell.Read(acc)
			return err
		})
		if err != nil {
			t.Fatalf("Do failed: %v", err)
		}

		return NewPrometheusExporter(tok).Render()
	})

	if !strings.Contains(out, "gocell_cell_read_total 1") {
		t.Fatalf("expected 1 cell read from live token, got:\n%s", out)
	}
	if !strings.Contains(out, "gocell_shared_borrow_total 1") {
		t.Fatalf("expected 1 shared borrow from live token, got:\n%s", out)
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	exp := NewPrometheusExporterFromSource(fakeSource{
		snapshot: goCell.MetricsSnapshot{
			Counters: map[goCell.MetricID]uint64{
				goCell.MetricExclusiveBorrow: 3,
			},
		},
	})

	srv := httptest.NewServer(exp.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body failed: %v", err)
	}
	if !strings.Contains(string(body), "gocell_exclusive_borrow_total 3") {
		t.Fatalf("expected exclusive borrow counter, got:\n%s", body)
	}
}
