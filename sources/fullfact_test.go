package sources

import (
	"testing"

	"github.com/veridata/factcrawl/browser/browsertest"
	"github.com/veridata/factcrawl/models"
)

func card(claim, verdict string) *browsertest.Elem {
	children := map[string][]*browsertest.Elem{}
	if claim != "" {
		children["div.card-claim-body p.card-text"] = []*browsertest.Elem{browsertest.Text(claim)}
	}
	if verdict != "" {
		children["div.card-conclusion-body p.card-text"] = []*browsertest.Elem{browsertest.Text(verdict)}
	}
	return &browsertest.Elem{Children: children}
}

func fullFactPage() *browsertest.Page {
	return browsertest.New().
		Set("h1.mb-3.highlight-js", browsertest.Text("Did the budget double?")).
		Set("div.timestamp", browsertest.Text("5 May 2021")).
		Set("div.cms-content > div.block-rich_text",
			browsertest.Text("First paragraph."),
			browsertest.Text("Second paragraph."),
		).
		Set("ul.citation > li > span > cite", browsertest.Text("Full Fact Team"))
}

func TestFullFactExtract_FansOutPerClaim(t *testing.T) {
	p := fullFactPage().
		Set("div.block-checked_claims div.card-claim-conclusion",
			card("The budget doubled.", "It rose by 40%."),
			card("Spending fell.", "It did not."),
		)

	records, err := NewFullFact().Extract(p, "https://fullfact.org/economy/budget/")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].Claim != "The budget doubled." || records[0].Verdict != "It rose by 40%." {
		t.Errorf("first record claim/verdict = %q / %q", records[0].Claim, records[0].Verdict)
	}
	if records[1].Claim != "Spending fell." || records[1].Verdict != "It did not." {
		t.Errorf("second record claim/verdict = %q / %q", records[1].Claim, records[1].Verdict)
	}
	for i, rec := range records {
		if rec.Type != models.TypeFactCheck {
			t.Errorf("record %d type = %q", i, rec.Type)
		}
		if rec.Title != "Did the budget double?" {
			t.Errorf("record %d title = %q", i, rec.Title)
		}
		if rec.Content != "First paragraph.\n\nSecond paragraph." {
			t.Errorf("record %d content = %q", i, rec.Content)
		}
		if rec.PublishDate != "2021-05-05T00:00:00Z" {
			t.Errorf("record %d publish date = %q", i, rec.PublishDate)
		}
	}
}

func TestFullFactExtract_NoCardsFallsBackToNoVerdict(t *testing.T) {
	records, err := NewFullFact().Extract(fullFactPage(), "https://fullfact.org/economy/budget/")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Type != models.TypeFactCheckNoVerdict {
		t.Errorf("type = %q, want %q", rec.Type, models.TypeFactCheckNoVerdict)
	}
	if rec.Claim != rec.Title {
		t.Errorf("fallback claim %q should equal title %q", rec.Claim, rec.Title)
	}
	if rec.Verdict != "" {
		t.Errorf("fallback verdict = %q, want empty", rec.Verdict)
	}
}

func TestFullFactExtract_SkipsLopsidedCards(t *testing.T) {
	p := fullFactPage().
		Set("div.block-checked_claims div.card-claim-conclusion",
			card("Claim without conclusion.", ""),
			card("Complete claim.", "Complete verdict."),
		)

	records, err := NewFullFact().Extract(p, "https://fullfact.org/economy/budget/")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1 (lopsided card skipped)", len(records))
	}
	if records[0].Claim != "Complete claim." {
		t.Errorf("claim = %q", records[0].Claim)
	}
}

func TestFullFactExtract_MissingTitleAborts(t *testing.T) {
	p := browsertest.New().Set("div.timestamp", browsertest.Text("5 May 2021"))

	if _, err := NewFullFact().Extract(p, "https://fullfact.org/x/"); err == nil {
		t.Fatal("want error when the title is missing")
	}
}
