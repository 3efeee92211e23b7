package rewrite

import (
	"fmt"
	"strings"

	"resumelens/internal/types"
)

// familyVoice implements Strategy from a table of family-specific
// wording. The five instances below are the whole closed set.
type familyVoice struct {
	key types.StrategyKey

	// leadVerb replaces a vague opener; metricVerb is preferred when the
	// bullet already carries a metric.
	leadVerb   string
	metricVerb string

	// summaryRole and summaryFocus shape the drafted summary.
	summaryRole  string
	summaryFocus string

	// letterValue is the family-toned third paragraph of a cover letter.
	letterValue string
}

func init() {
	register(&familyVoice{
		key:          types.StrategyEngineering,
		leadVerb:     "Engineered",
		metricVerb:   "Delivered",
		summaryRole:  "engineer",
		summaryFocus: "designing and operating reliable systems",
		letterValue:  "I care about building software that holds up in production: clear interfaces, measurable performance, and systems the whole team can maintain.",
	})
	register(&familyVoice{
		key:          types.StrategySales,
		leadVerb:     "Owned and grew",
		metricVerb:   "Closed",
		summaryRole:  "sales professional",
		summaryFocus: "building pipeline and closing revenue",
		letterValue:  "I bring a consistent record of quota performance and long-term account relationships, and I treat every conversation as a chance to understand what the customer actually needs.",
	})
	register(&familyVoice{
		key:          types.StrategyMarketing,
		leadVerb:     "Produced",
		metricVerb:   "Drove",
		summaryRole:  "marketer",
		summaryFocus: "turning audience insight into campaigns that perform",
		letterValue:  "I build campaigns around a clear message and a measurable goal, and I iterate on the numbers rather than on opinions.",
	})
	register(&familyVoice{
		key:          types.StrategyFinance,
		leadVerb:     "Oversaw",
		metricVerb:   "Managed",
		summaryRole:  "finance professional",
		summaryFocus: "keeping reporting accurate and planning disciplined",
		letterValue:  "I hold my work to audit standards: numbers that reconcile, forecasts with stated assumptions, and reporting that leadership can act on.",
	})
	register(&familyVoice{
		key:          types.StrategyBusiness,
		leadVerb:     "Established",
		metricVerb:   "Led",
		summaryRole:  "professional",
		summaryFocus: "delivering cross-functional initiatives",
		letterValue:  "I work across functions to turn ambiguous goals into concrete plans, and I keep stakeholders aligned from kickoff through delivery.",
	})
}

func (v *familyVoice) Key() types.StrategyKey { return v.key }

// RewriteBullet replaces a vague opener with this family's strong verb,
// capitalizes the first letter, and normalizes terminal punctuation.
func (v *familyVoice) RewriteBullet(text string, signals types.BulletSignals) string {
	verb := v.leadVerb
	if signals.HasMetric {
		verb = v.metricVerb
	}

	out := strings.TrimSpace(text)
	if signals.IsVague {
		out, _ = replaceVagueLead(out, verb)
	}
	return finishBullet(out)
}

const summaryMinLen = 80

// DraftSummary produces a short professional summary naming the
// candidate's top skills verbatim.
func (v *familyVoice) DraftSummary(p Params) string {
	role := v.summaryRole
	if p.Title != "" {
		role = p.Title
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s with %s experience %s.",
		strings.ToUpper(role[:1])+role[1:], yearsPhrase(p.Years), v.summaryFocus)
	if skills := topSkillList(p.TopSkills, 5); skills != "" {
		fmt.Fprintf(&b, " Skilled in %s.", skills)
	}
	if len(p.Highlights) > 0 {
		fmt.Fprintf(&b, " Recent work: %s.", strings.TrimRight(p.Highlights[0], "."))
	}

	out := b.String()
	if len(out) < summaryMinLen {
		out += " Focused on delivering measurable outcomes and raising the standard of the work around them."
	}
	return out
}

// DraftCoverLetter returns exactly four paragraphs: salutation and
// interest, background, family-toned value, and closing.
func (v *familyVoice) DraftCoverLetter(p Params) []string {
	intro := fmt.Sprintf("%s\n\nI am writing to express my interest in %s", salutation(p.Company), orRole(p.Title))
	if p.Company != "" {
		intro += " at " + p.Company
	}
	intro += ". The position aligns closely with my background, and I believe I can contribute from day one."

	background := fmt.Sprintf("I bring %s experience %s.", yearsPhrase(p.Years), v.summaryFocus)
	if skills := topSkillList(p.TopSkills, 4); skills != "" {
		background += fmt.Sprintf(" My core strengths include %s.", skills)
	}
	if len(p.Highlights) > 0 {
		background += fmt.Sprintf(" In my most recent role, I %s.",
			lowerFirst(strings.TrimRight(p.Highlights[0], ".")))
	}

	closing := fmt.Sprintf("I would welcome the chance to discuss how my experience maps to your needs. Thank you for your consideration.\n\n%s", signoff(p.Name))

	return []string{intro, background, v.letterValue, closing}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
