package audit

import "math"

// Grade thresholds, highest first. Monotonic over [0,100].
var gradeThresholds = []struct {
	min   int
	grade string
}{
	{90, "A"},
	{80, "B"},
	{70, "C"},
	{60, "D"},
	{50, "E"},
	{0, "F"},
}

// gradeFor maps a 0-100 score onto a letter grade.
func gradeFor(score int) string {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return "F"
}

func pass(check, detail string, max int) Finding {
	return Finding{Check: check, Status: StatusPass, Detail: detail, Points: max, MaxPoints: max}
}

func partial(check, detail string, points, max int) Finding {
	return Finding{Check: check, Status: StatusPartial, Detail: detail, Points: points, MaxPoints: max}
}

func fail(check, detail string, max int) Finding {
	return Finding{Check: check, Status: StatusFail, Detail: detail, MaxPoints: max}
}

// boolCheck is the common all-or-nothing finding.
func boolCheck(check string, ok bool, passDetail, failDetail string, max int) Finding {
	if ok {
		return pass(check, passDetail, max)
	}
	return fail(check, failDetail, max)
}

// newCategoryScore rolls findings up into a category: the score is the
// points ratio rounded to the nearest integer.
func newCategoryScore(weight float64, findings []Finding, recs []string) CategoryScore {
	earned, possible := 0, 0
	for _, f := range findings {
		earned += f.Points
		possible += f.MaxPoints
	}
	score := 0
	if possible > 0 {
		score = int(math.Round(100 * float64(earned) / float64(possible)))
	}
	return CategoryScore{
		Score:           score,
		Grade:           gradeFor(score),
		Weight:          weight,
		Findings:        findings,
		Recommendations: recs,
	}
}

// recorder collects findings and recommendation strings while a category
// evaluator runs, then rolls them up in one place.
type recorder struct {
	findings []Finding
	recs     []string
}

func (r *recorder) add(f Finding) {
	r.findings = append(r.findings, f)
}

// addRec attaches a recommendation when the finding did not fully pass.
func (r *recorder) addRec(f Finding, rec string) {
	r.add(f)
	if f.Status != StatusPass {
		r.recs = append(r.recs, rec)
	}
}

func (r *recorder) category(weight float64) CategoryScore {
	return newCategoryScore(weight, r.findings, r.recs)
}

func (r *recorder) results() ([]Finding, []string) {
	return r.findings, r.recs
}
