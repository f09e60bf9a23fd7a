// Command report runs an audit over a snapshot bundle and renders the
// result as an aligned text table, or as raw JSON with -json.
//
// The bundle is the same JSON body the HTTP API accepts:
//
//	{"pages": [...], "resources": {...}}
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/geo-audit/backend/audit"
)

type bundle struct {
	Pages     []audit.PageSnapshot `json:"pages"`
	Resources audit.SiteResources  `json:"resources"`
}

func main() {
	inPath := flag.String("in", "", "path to snapshot bundle JSON (default stdin)")
	asJSON := flag.Bool("json", false, "emit the full analysis as JSON")
	workers := flag.Int("workers", 8, "page analysis concurrency")
	topN := flag.Int("top", 10, "number of recommendations to show")
	flag.Parse()

	in := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("Failed to open bundle: %v", err)
		}
		defer f.Close()
		in = f
	}

	var b bundle
	if err := json.NewDecoder(in).Decode(&b); err != nil {
		log.Fatalf("Failed to parse bundle: %v", err)
	}

	analyzer := audit.New(audit.WithWorkers(*workers))
	analysis, err := analyzer.AnalyzeSite(b.Pages, b.Resources)
	if err != nil {
		log.Fatalf("Audit failed: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			log.Fatalf("Failed to encode analysis: %v", err)
		}
		return
	}

	printReport(analysis, *topN)
}

func printReport(analysis *audit.SiteAnalysis, topN int) {
	fmt.Printf("Site:      %s\n", analysis.URL)
	fmt.Printf("Archetype: %s\n", analysis.Archetype)
	fmt.Printf("Pages:     %d\n", analysis.PageCount)
	fmt.Println()
	fmt.Printf("Overall %3d (%s)   GEO %3d (%s)   AEO %3d (%s)\n",
		analysis.OverallScore, analysis.OverallGrade,
		analysis.GEOScore, analysis.GEOGrade,
		analysis.AEOScore, analysis.AEOGrade)
	fmt.Println()

	fmt.Println("Content")
	printTable(contentRows(analysis.Content))

	fmt.Println()
	fmt.Println("Integration")
	printTable(integrationRows(analysis.Integration))

	if len(analysis.Recommendations) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Recommendations")
	recs := analysis.Recommendations
	if topN > 0 && len(recs) > topN {
		recs = recs[:topN]
	}
	rows := make([][]string, 0, len(recs))
	for _, rec := range recs {
		rows = append(rows, []string{
			string(rec.Priority),
			string(rec.Effort),
			rec.Title,
			fmt.Sprintf("%d -> %d", rec.CurrentScore, rec.PotentialScore),
		})
	}
	printTable(rows)

	if analysis.Insights != "" {
		fmt.Println()
		fmt.Println(analysis.Insights)
	}
}

func contentRows(content audit.ContentProfile) [][]string {
	categories := []struct {
		name  string
		score audit.CategoryScore
	}{
		{"content-structure", content.ContentStructure},
		{"structured-data", content.StructuredData},
		{"topical-authority", content.TopicalAuthority},
		{"citation-worthiness", content.CitationWorthiness},
		{"freshness", content.Freshness},
		{"language-patterns", content.LanguagePatterns},
		{"meta-information", content.MetaInformation},
		{"technical-health", content.TechnicalHealth},
		{"content-uniqueness", content.ContentUniqueness},
		{"multi-format", content.MultiFormat},
		{"trust-signals", content.TrustSignals},
	}

	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, scoreRow(cat.name, cat.score))
	}
	return rows
}

func integrationRows(integration audit.IntegrationProfile) [][]string {
	names := make([]string, 0, len(integration.Categories))
	for name := range integration.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		rows = append(rows, scoreRow(name, integration.Categories[name]))
	}
	return rows
}

func scoreRow(name string, cat audit.CategoryScore) []string {
	return []string{
		name,
		fmt.Sprintf("%3d", cat.Score),
		cat.Grade,
		fmt.Sprintf("%.0f%%", cat.Weight*100),
	}
}

// printTable pads each column to its widest cell by display width, so
// the table stays aligned even when cells carry wide runes.
func printTable(rows [][]string) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.Reset()
		sb.WriteString("  ")
		for i, cell := range row {
			sb.WriteString(cell)
			if i < len(row)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
				sb.WriteString("  ")
			}
		}
		fmt.Println(sb.String())
	}
}
