package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/IsaacDSC/trendforge/internal/domain"
)

const trendCount = 10

func indentJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}

func scoutPrompt() string {
	return fmt.Sprintf(`You are a trend analyst. Identify %d CURRENT, EMERGING trends from the tech/creator economy that would make profitable digital products.

For each trend, provide:
- topic: the trend name (e.g. "AI Writing Assistants for E-commerce")
- category: one of Tech, Business, Creative, Lifestyle, Education, Productivity
- momentumScore: 1-100, higher means more momentum
- whyItMatters: 2-3 sentence explanation
- whoItServes: target audience description
- monetizationWindow: "short" (0-3 months), "medium" (3-12 months) or "long" (12+ months)

Draw on X/Twitter trending topics, hot posts in r/entrepreneur and r/SideProject, rising Google Trends searches and new Product Hunt launches.

Return ONLY valid JSON:
{
  "trends": [
    {
      "topic": "Trend Name",
      "category": "Tech",
      "momentumScore": 85,
      "whyItMatters": "...",
      "whoItServes": "...",
      "monetizationWindow": "short"
    }
  ]
}`, trendCount)
}

func athenaPrompt(in IdeaInput) string {
	var b strings.Builder

	b.WriteString("TASK: Generate a Dominance Dossier for a high-conversion product launch.\n\n")
	b.WriteString(`Persona: You are "Athena", a market dominance strategist. You deconstruct market trends and engineer products built to convert. Generic, low-effort or unvalidated ideas are rejected.`)
	b.WriteString("\n\nInputs:\n")
	fmt.Fprintf(&b, "1. TREND_SUMMARY: %s\n", indentJSON(in.TrendSummary))
	fmt.Fprintf(&b, "2. USER_GOAL: %s\n", in.Goal)
	fmt.Fprintf(&b, "3. PRODUCT_TYPE: %s\n\n", in.ProductType)

	b.WriteString(`STEP 1: Trend deconstruction and competitive gap analysis
- Identify the core psychological driver behind the trend.
- Analyze the top 3 existing products riding this trend and name the single biggest flaw of each.
- Define the superiority vector: the product MUST solve the biggest flaw found.

STEP 2: Product engineering
- Generate exactly 3 distinct product concepts for PRODUCT_TYPE, each targeting a different sub-niche.
- For each concept give productName (high-authority, SEO-optimized), productDescription (one benefit-driven sentence built on the superiority vector) and a 5-point coreCurriculumOutline for knowledge products or coreFeatureSet for software.

STEP 3: Marketing angles
- For the first (best) concept only, produce three marketingAngles with angleType "Urgency", "Authority" and "Social Proof".
- Each angle has a headline of at most 10 words and a 3-sentence hook.

Return ONLY valid JSON with this structure:
`)
	b.WriteString(fmt.Sprintf(`{
  "trendAnalysis": {
    "corePsychologicalDriver": "...",
    "competitiveFlaw": "...",
    "superiorityVector": "..."
  },
  "productConcepts": [
    {
      "productType": %[1]q,
      "productName": "...",
      "productDescription": "...",
      "coreCurriculumOutline": ["...", "...", "...", "...", "..."],
      "marketingAngles": [
        {"angleType": "Urgency", "headline": "...", "hook": "..."},
        {"angleType": "Authority", "headline": "...", "hook": "..."},
        {"angleType": "Social Proof", "headline": "...", "hook": "..."}
      ]
    },
    {"productType": %[1]q, "productName": "...", "productDescription": "...", "coreCurriculumOutline": ["..."]},
    {"productType": %[1]q, "productName": "...", "productDescription": "...", "coreCurriculumOutline": ["..."]}
  ]
}`, in.ProductType))

	return b.String()
}

func hermesPrompt(in CompileInput, superiorityVector string) string {
	goal := in.Goal
	if goal == "" {
		goal = "Not specified"
	}

	var trendSummary any = map[string]any{}
	if len(in.TrendSummary) > 0 {
		trendSummary = in.TrendSummary
	}

	var b strings.Builder

	b.WriteString("TASK: Compile a complete, deployable Launch Blueprint for Whop.\n\n")
	b.WriteString(`Persona: You are "Hermes", the execution agent. Turn the strategic concept into a flawless, deployable asset package that follows Whop best practices.`)
	b.WriteString("\n\nInputs:\n")
	fmt.Fprintf(&b, "1. SELECTED_CONCEPT: %s\n", indentJSON(in.SelectedConcept))
	fmt.Fprintf(&b, "2. SELECTED_ANGLE: %s\n", indentJSON(in.SelectedAngle))
	fmt.Fprintf(&b, "3. USER_GOAL: %s\n", goal)
	fmt.Fprintf(&b, "4. TREND_SUMMARY: %s\n", indentJSON(trendSummary))
	fmt.Fprintf(&b, "5. SUPERIORITY_VECTOR: %s\n\n", superiorityVector)

	b.WriteString(`STEP 1: Whop product page
- Expand productDescription into a 5-paragraph product page: the hook (from SELECTED_ANGLE), the problem, the solution (highlight the superiority vector), the proof (the 5-point outline as bullets) and an urgent call to action.
- Suggest a premium price such as 97, 197 or 497 USD and justify it.

STEP 2: Community assets
- A high-energy community welcome post with a clear next step.
- A launch announcement using the SELECTED_ANGLE headline and hook.

STEP 3: Technical snippet
- The JSON payload that creates this product through the Whop API.

Return ONLY valid JSON with this structure:
{
  "whopProductPayload": {
    "productName": "...",
    "longDescription": "...",
    "suggestedPriceUSD": 97,
    "priceJustification": "..."
  },
  "marketingAssets": {
    "launchAnnouncementHeadline": "...",
    "launchAnnouncementBody": "...",
    "communityWelcomePost": "..."
  },
  "whopApiSnippet": {
    "endpoint": "/api/v1/products",
    "method": "POST",
    "payload": {}
  }
}`)

	return b.String()
}

var angleMoods = map[string]string{
	"Urgency":      "high contrast, dynamic motion, bold colors with red and yellow accents",
	"Authority":    "minimalist, dark mode, sharp lines, blue, white and gold accents, one powerful focal object",
	"Social Proof": "warm lighting, diverse people, subtle technology, focus on community and results",
}

func hephaestusPrompt(in AssetInput, angle domain.MarketingAngle) string {
	mood, ok := angleMoods[angle.AngleType]
	if !ok {
		mood = angleMoods["Authority"]
	}

	outline := in.CoreCurriculumOutline
	if outline == nil {
		outline = []string{}
	}

	var b strings.Builder

	b.WriteString("TASK: Generate 3 optimized image prompts for a high-conversion Whop product launch.\n\n")
	b.WriteString(`Persona: You are "Hephaestus", the master forger. Produce the visual assets for the finalized product, optimized for Whop and for conversion.`)
	b.WriteString("\n\nInputs:\n")
	fmt.Fprintf(&b, "1. PRODUCT_NAME: %s\n", in.ProductName)
	fmt.Fprintf(&b, "2. PRODUCT_DESCRIPTION: %s\n", in.ProductDescription)
	fmt.Fprintf(&b, "3. MARKETING_ANGLE: %s (%s)\n", angle.AngleType, indentJSON(angle))
	fmt.Fprintf(&b, "4. CORE_CURRICULUM_OUTLINE: %s\n\n", indentJSON(outline))

	fmt.Fprintf(&b, `STEP 1: Visual identity
- Name the core visual metaphor of the product (e.g. rocket launch, blueprint, treasure map, digital brain).
- Style and mood for this angle: %s.

STEP 2: Image prompts, each a single detailed string ready for an image model
1. productThumbnail_1x1: abstract rendering of the metaphor with the product name as a subtle futuristic UI element, legible at small sizes, 3D render, volumetric lighting.
2. heroImage_16x9: a scene showing the result of using the product with the outline as holographic data streams, cinematic lighting, photorealistic commercial photography.
3. socialAdCreative_4x5: an emotional close-up capturing the core psychological driver of the trend, vibrant, shallow depth of field, made for mobile feeds.

Return ONLY valid JSON with this structure:
{
  "visualMetaphor": "...",
  "styleMood": "...",
  "imagePrompts": {
    "productThumbnail_1x1": "...",
    "heroImage_16x9": "...",
    "socialAdCreative_4x5": "..."
  }
}`, mood)

	return b.String()
}
