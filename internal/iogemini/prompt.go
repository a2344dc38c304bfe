package iogemini

import (
	"fmt"
	"strings"

	"github.com/gnames/gnflora/pkg/flora"
)

// metadataSummary lists the most observed species with their families and
// record counts.
func metadataSummary(species []flora.SpeciesAggregate, limit int) string {
	if limit > 0 && len(species) > limit {
		species = species[:limit]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Species Occurrence Data from GBIF (Top %d):**\n", limit)
	for _, v := range species {
		fmt.Fprintf(&sb, "- %s (Family: %s, Records: %d)\n",
			v.Name, v.Family, v.Count)
	}
	return sb.String()
}

func failedSummary(unmatched []string) string {
	names := "None"
	if len(unmatched) > 0 {
		names = strings.Join(unmatched, ", ")
	}
	return "**Species without local descriptions:** " + names
}

// buildPrompt creates an identification prompt when the user described a
// specimen, and a field guide prompt otherwise.
func buildPrompt(input flora.ReportInput, metadataLimit int) string {
	meta := metadataSummary(input.Species, metadataLimit)
	failed := failedSummary(input.Unmatched)
	if strings.TrimSpace(input.UserInput) != "" {
		return fmt.Sprintf(identificationTmpl,
			input.UserInput, input.Combined, meta, failed)
	}
	return fmt.Sprintf(fieldGuideTmpl, input.Combined, meta, failed)
}

const identificationTmpl = `You are an expert field botanist. Your task is to identify a user's specimen based on their description, comparing it against a list of candidate species found in the area.
**USER'S SPECIMEN DESCRIPTION:**
%s
**CANDIDATE SPECIES DATA (from local e-Flora):**
%s
**CONTEXTUAL DATA:**
%s
%s
**YOUR TASK:**
Provide a systematic identification analysis in this exact structure:
## TOP CANDIDATES
List the 3 most likely species. For each, provide a **Match Confidence** percentage. Justify your choice by listing key **Matching Features** and any **Discrepancies**. Consider the GBIF record count as an indicator of how common a species is.
## DIAGNOSTIC COMPARISON
Create a markdown table comparing the most important diagnostic features (e.g., leaves, flowers, habit) of the user's specimen against your top candidates.
## CRITICAL OBSERVATIONS & NEXT STEPS
What single, key feature would best confirm the identification? What should the user look for or photograph next to be certain?
`

const fieldGuideTmpl = `You are creating a practical field guide for botanists based on species known to occur in a specific area.
**AVAILABLE SPECIES DATA (from local e-Flora):**
%s
**CONTEXTUAL DATA:**
%s
%s
**YOUR TASK:**
Create a practical field guide using this exact structure, focusing only on the species for which descriptions were provided.
## QUICK IDENTIFICATION MATRIX
Create a markdown table comparing the most diagnostic features (e.g., Habit, Leaf Shape, Flower Color, Habitat) for all available species. Use the GBIF record count to hint at which species are more commonly encountered.
## SIMPLE DICHOTOMOUS KEY
Create a simple, practical dichotomous key to help differentiate between these species.
**CRITICAL FORMATTING RULES:**
1.  Each lead of a couplet (e.g., ` + "`1a` and `1b`" + `) **MUST** be on its own, separate line. **NEVER** combine ` + "`...a` and `...b`" + ` leads onto the same line.
2.  Do not use dot leaders (` + "`.......`" + `).
3.  Use an arrow ` + "`->`" + ` to point to the result.
4.  Bold the species name or the "Go to" instruction.
**EXAMPLE OF PERFECT FORMAT:**
1a. Flowers yellow -> **Go to 2**
1b. Flowers white or pink -> **Go to 3**
2a. Leaves needle-like -> ***Species A***
2b. Leaves broad -> ***Species B***
3a. Shrub over 1m tall -> ***Species C***
3b. Shrub under 1m tall -> ***Species D***
## KEY FIELD MARKS
For each species, list the 2-3 most distinctive "at-a-glance" features that a botanist in the field could use for rapid identification.
`
