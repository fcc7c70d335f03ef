package warroom

import (
	"reflect"
	"testing"
)

func TestReplay_BuyAddsGrossPlusFee(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 100, 10, 5),
	})

	pos := book.Position("2330.TW")
	if pos == nil {
		t.Fatal("Position(2330.TW) = nil, want an open position")
	}
	if !pos.Shares.Equal(Q(100)) {
		t.Errorf("Shares = %s, want 100", pos.Shares)
	}
	if !pos.CostBasis.Equal(TWD(1005)) {
		t.Errorf("CostBasis = %s, want 1005", pos.CostBasis)
	}
	if !pos.AverageCost().Equal(TWD(10.05)) {
		t.Errorf("AverageCost() = %s, want 10.05", pos.AverageCost())
	}
}

func TestReplay_BuysAccumulateGrossPlusFee(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 100, 10, 5),
		buyEvent("2025-01-20", "2330", 50, 14, 3),
		buyEvent("2025-02-05", "2330", 25, 8, 1),
	})

	pos := book.Position("2330.TW")
	if !pos.Shares.Equal(Q(175)) {
		t.Errorf("Shares = %s, want sum of quantities 175", pos.Shares)
	}
	// 1000+5 + 700+3 + 200+1
	if !pos.CostBasis.Equal(TWD(1909)) {
		t.Errorf("CostBasis = %s, want 1909", pos.CostBasis)
	}
}

func TestReplay_FullSellZeroesThePosition(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 100, 10, 5),
		sellEvent("2025-02-01", "2330", 100, 25, 0, 0), // price is irrelevant to the basis
	})

	pos := book.Position("2330.TW")
	if !pos.Shares.IsZero() {
		t.Errorf("Shares = %s, want 0 after a full sell", pos.Shares)
	}
	if !pos.CostBasis.IsZero() {
		t.Errorf("CostBasis = %s, want 0 after a full sell", pos.CostBasis)
	}
}

func TestReplay_BuyAnnotationIsNotRealized(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 100, 10, 5),
	})

	annotations := book.Annotations()
	if len(annotations) != 1 {
		t.Fatalf("len(Annotations()) = %d, want 1", len(annotations))
	}
	a := annotations[0]
	if a.Realized {
		t.Error("buy annotation marked realized")
	}
	if !a.Gross.Equal(TWD(1000)) {
		t.Errorf("Gross = %s, want 1000", a.Gross)
	}
	if !a.NetReceivable.Equal(TWD(1005)) {
		t.Errorf("NetReceivable = %s, want 1005", a.NetReceivable)
	}
}

func TestReplay_SellRealizesAgainstAverageCost(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 100, 10, 5),
		sellEvent("2025-02-01", "2330", 40, 12, 2, 1),
	})

	annotations := book.Annotations()
	if len(annotations) != 2 {
		t.Fatalf("len(Annotations()) = %d, want 2", len(annotations))
	}
	a := annotations[1]
	if !a.Realized {
		t.Fatal("sell annotation not marked realized")
	}
	if !a.NetReceivable.Equal(TWD(477)) {
		t.Errorf("NetReceivable = %s, want 477", a.NetReceivable)
	}
	if !a.AvgCostBefore.Equal(TWD(10.05)) {
		t.Errorf("AvgCostBefore = %s, want 10.05", a.AvgCostBefore)
	}
	if !a.CostWithdrawn.Equal(TWD(402)) {
		t.Errorf("CostWithdrawn = %s, want 402", a.CostWithdrawn)
	}
	if !a.RealizedPnL.Equal(TWD(75)) {
		t.Errorf("RealizedPnL = %s, want 75", a.RealizedPnL)
	}
	if !a.ROI.Equal(Percent(18.6567)) {
		t.Errorf("ROI = %s, want 18.66%%", a.ROI)
	}

	pos := book.Position("2330.TW")
	if !pos.Shares.Equal(Q(60)) {
		t.Errorf("Shares = %s, want 60", pos.Shares)
	}
	if !pos.CostBasis.Equal(TWD(603)) {
		t.Errorf("CostBasis = %s, want 603", pos.CostBasis)
	}
	// A sell at average cost must not move the average cost.
	if !pos.AverageCost().Equal(TWD(10.05)) {
		t.Errorf("AverageCost() = %s, want 10.05 unchanged", pos.AverageCost())
	}
}

func TestReplay_OversellClampsPositionToZero(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 10, 10, 0),
		sellEvent("2025-02-01", "2330", 20, 11, 0, 0),
	})

	pos := book.Position("2330.TW")
	if !pos.Shares.IsZero() {
		t.Errorf("Shares = %s, want 0 after oversell", pos.Shares)
	}
	if !pos.CostBasis.IsZero() {
		t.Errorf("CostBasis = %s, want 0 after oversell", pos.CostBasis)
	}
	// The withdrawal is still priced at average cost for the full quantity.
	a := book.Annotations()[1]
	if !a.CostWithdrawn.Equal(TWD(200)) {
		t.Errorf("CostWithdrawn = %s, want 200", a.CostWithdrawn)
	}
	if !a.RealizedPnL.Equal(TWD(20)) {
		t.Errorf("RealizedPnL = %s, want 20", a.RealizedPnL)
	}

	// The resulting position does not depend on how much excess was asked.
	other := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 10, 10, 0),
		sellEvent("2025-02-01", "2330", 2000, 11, 0, 0),
	}).Position("2330.TW")
	if !other.Shares.IsZero() || !other.CostBasis.IsZero() {
		t.Errorf("oversell by 2000 left %s shares / %s", other.Shares, other.CostBasis)
	}
}

func TestReplay_SellUnknownSymbolBooksFullProceeds(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		sellEvent("2025-02-01", "2330", 10, 50, 0, 0),
	})

	a := book.Annotations()[0]
	if !a.RealizedPnL.Equal(a.NetReceivable) {
		t.Errorf("RealizedPnL = %s, want full proceeds %s", a.RealizedPnL, a.NetReceivable)
	}
	if !a.ROI.Equal(0) {
		t.Errorf("ROI = %s, want 0 on a zero-cost sale", a.ROI)
	}
	pos := book.Position("2330.TW")
	if !pos.Shares.IsZero() || !pos.CostBasis.IsZero() {
		t.Errorf("position = %s shares / %s, want empty", pos.Shares, pos.CostBasis)
	}
}

func TestReplay_CostOverrideWins(t *testing.T) {
	sell := sellEvent("2025-02-01", "2330", 40, 12, 0, 0)
	sell.Cost = TWD(500)

	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "2330", 100, 10, 0),
		sell,
	})

	a := book.Annotations()[1]
	if !a.CostWithdrawn.Equal(TWD(500)) {
		t.Errorf("CostWithdrawn = %s, want the 500 override", a.CostWithdrawn)
	}
	if !a.RealizedPnL.Equal(TWD(-20)) {
		t.Errorf("RealizedPnL = %s, want -20", a.RealizedPnL)
	}
	pos := book.Position("2330.TW")
	if !pos.CostBasis.Equal(TWD(500)) {
		t.Errorf("CostBasis = %s, want 500", pos.CostBasis)
	}
}

func TestReplay_GrossOverrideWins(t *testing.T) {
	buy := buyEvent("2025-01-10", "2330", 100, 10, 5)
	buy.Gross = TWD(999)

	book := Replay(nil, []TradeEvent{buy})

	pos := book.Position("2330.TW")
	if !pos.CostBasis.Equal(TWD(1004)) {
		t.Errorf("CostBasis = %s, want 999 + 5 fee", pos.CostBasis)
	}
}

func TestReplay_SeedLotsOpenPositions(t *testing.T) {
	seeds := []Lot{
		{Symbol: "00679B", Kind: Bond, Quantity: Q(50), CostPerShare: TWD(30)},
	}
	book := Replay(seeds, []TradeEvent{
		sellEvent("2025-02-01", "00679B", 10, 31, 0, 0),
	})

	pos := book.Position("00679B.TWO")
	if pos == nil {
		t.Fatal("Position(00679B.TWO) = nil, want seeded position")
	}
	if !pos.Shares.Equal(Q(40)) {
		t.Errorf("Shares = %s, want 40", pos.Shares)
	}
	if !pos.CostBasis.Equal(TWD(1200)) {
		t.Errorf("CostBasis = %s, want 1200", pos.CostBasis)
	}
	a := book.Annotations()[0]
	if !a.CostWithdrawn.Equal(TWD(300)) {
		t.Errorf("CostWithdrawn = %s, want 300", a.CostWithdrawn)
	}
	if !a.RealizedPnL.Equal(TWD(10)) {
		t.Errorf("RealizedPnL = %s, want 10", a.RealizedPnL)
	}
}

func TestReplay_PositionsKeepFirstSeenOrder(t *testing.T) {
	book := Replay(nil, []TradeEvent{
		buyEvent("2025-01-10", "0050", 10, 100, 0),
		buyEvent("2025-01-11", "AAPL", 5, 200, 0),
		buyEvent("2025-01-12", "2330", 10, 900, 0),
		buyEvent("2025-01-13", "0050", 10, 101, 0), // already seen
	})

	var got []string
	for p := range book.Positions() {
		got = append(got, p.Symbol)
	}
	want := []string{"0050.TW", "AAPL", "2330.TW"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Positions() order = %v, want %v", got, want)
	}
}

func TestReplay_IsDeterministic(t *testing.T) {
	events := []TradeEvent{
		buyEvent("2025-01-10", "2330", 100, 10, 5),
		sellEvent("2025-02-01", "2330", 40, 12, 2, 1),
		buyEvent("2025-02-10", "AAPL", 5, 200, 1),
		sellEvent("2025-03-01", "2330", 100, 9, 2, 1), // oversell
	}

	first := Replay(nil, events)
	second := Replay(nil, events)

	if !reflect.DeepEqual(first.Annotations(), second.Annotations()) {
		t.Error("two replays of the same ledger produced different annotations")
	}
	for p := range first.Positions() {
		q := second.Position(p.Symbol)
		if !reflect.DeepEqual(p, q) {
			t.Errorf("position %s differs between replays: %+v vs %+v", p.Symbol, p, q)
		}
	}
}

func TestValidate_RequiresCostBasisForNakedSell(t *testing.T) {
	book := Replay(nil, nil)

	sell := sellEvent("2025-02-01", "2330", 10, 50, 0, 0)
	if _, err := sell.Validate(book); err == nil {
		t.Error("Validate() accepted a naked sell without a cost override")
	}

	sell.Cost = TWD(400)
	if _, err := sell.Validate(book); err != nil {
		t.Errorf("Validate() with cost override error = %v", err)
	}
}

func TestValidate_QuickFixes(t *testing.T) {
	buy := TradeEvent{
		Side:     Buy,
		Symbol:   "2330",
		Quantity: Q(10),
		Price:    M(500, ""),
	}
	fixed, err := buy.Validate(nil)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if fixed.Symbol != "2330.TW" {
		t.Errorf("Symbol = %q, want normalized 2330.TW", fixed.Symbol)
	}
	if fixed.Currency() != "TWD" {
		t.Errorf("Currency() = %q, want inferred TWD", fixed.Currency())
	}
	if fixed.Kind != Stock {
		t.Errorf("Kind = %q, want default stock", fixed.Kind)
	}
	if fixed.Date.IsZero() {
		t.Error("Date still zero, want today")
	}
}
