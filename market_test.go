package folio

import "testing"

func TestHistoryRecordOverwritesSameDay(t *testing.T) {
	hist := NewHistory()
	hist.Record("AAPL", day(2025, 8, 30), 22_000)
	hist.Record("AAPL", day(2025, 8, 31), 22_500)
	hist.Record("AAPL", day(2025, 8, 31), 22_752) // same-day re-run

	series := hist.Series("AAPL")
	if len(series) != 2 {
		t.Fatalf("series has %d points, want 2", len(series))
	}
	if series[1].PriceCents != 22_752 {
		t.Errorf("last point = %d, want the overwritten 22752", series[1].PriceCents)
	}
}

func TestSnapshotPriceMapDropsNegative(t *testing.T) {
	snap := NewSnapshot()
	snap.Symbols["AAPL"] = Quote{PriceCents: 22_752, Currency: "USD"}
	snap.Symbols["BROKEN"] = Quote{PriceCents: -1, Currency: "USD"}
	snap.Symbols["FREE"] = Quote{PriceCents: 0, Currency: "USD"}

	prices := snap.PriceMap()
	if _, ok := prices["BROKEN"]; ok {
		t.Error("negative price survived PriceMap")
	}
	if prices["AAPL"] != 22_752 {
		t.Errorf("AAPL = %d, want 22752", prices["AAPL"])
	}
	if _, ok := prices["FREE"]; !ok {
		t.Error("zero price must be kept")
	}
}
