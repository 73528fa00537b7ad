package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

type MonetizationWindow string

const (
	WindowShort  MonetizationWindow = "short"
	WindowMedium MonetizationWindow = "medium"
	WindowLong   MonetizationWindow = "long"
)

type TrendSummary struct {
	WhyItMatters       string             `json:"whyItMatters"`
	WhoItServes        string             `json:"whoItServes"`
	MonetizationWindow MonetizationWindow `json:"monetizationWindow"`
}

type Trend struct {
	ID            string       `json:"id"`
	Topic         string       `json:"topic"`
	Category      string       `json:"category"`
	MomentumScore int          `json:"momentumScore"`
	Summary       TrendSummary `json:"summary"`
	Source        string       `json:"source,omitempty"`
	Timestamp     time.Time    `json:"timestamp"`
}

type TrendAnalysis struct {
	CorePsychologicalDriver string `json:"corePsychologicalDriver"`
	CompetitiveFlaw         string `json:"competitiveFlaw"`
	SuperiorityVector       string `json:"superiorityVector"`
}

type MarketingAngle struct {
	AngleType string `json:"angleType" validate:"required"`
	Headline  string `json:"headline"`
	Hook      string `json:"hook"`
}

type ProductConcept struct {
	ProductType           string           `json:"productType"`
	ProductName           string           `json:"productName" validate:"required"`
	ProductDescription    string           `json:"productDescription"`
	CoreCurriculumOutline []string         `json:"coreCurriculumOutline,omitempty"`
	CoreFeatureSet        []string         `json:"coreFeatureSet,omitempty"`
	MarketingAngles       []MarketingAngle `json:"marketingAngles,omitempty"`
}

// Outline returns the curriculum for knowledge products or the feature set for software.
func (c ProductConcept) Outline() []string {
	if len(c.CoreCurriculumOutline) > 0 {
		return c.CoreCurriculumOutline
	}
	return c.CoreFeatureSet
}

// Dossier is the idea-generation output: analysis plus exactly three concepts.
type Dossier struct {
	TrendAnalysis   TrendAnalysis    `json:"trendAnalysis"`
	ProductConcepts []ProductConcept `json:"productConcepts"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	Trend           json.RawMessage  `json:"trend,omitempty"`
	Goal            string           `json:"goal,omitempty"`
	ProductType     string           `json:"productType,omitempty"`
	Agent           string           `json:"agent"`
}

// PriceUSD accepts a JSON number or a string such as "$197" or "197 USD".
type PriceUSD int

const DefaultPriceUSD PriceUSD = 97

func (p *PriceUSD) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err == nil {
		*p = PriceUSD(math.Round(f))
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	*p = ParsePriceUSD(s)
	return nil
}

// ParsePriceUSD keeps the digits of the whole-dollar part; anything unparsable or zero is DefaultPriceUSD.
func ParsePriceUSD(s string) PriceUSD {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}

	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)

	n, err := strconv.Atoi(digits)
	if err != nil || n == 0 {
		return DefaultPriceUSD
	}
	return PriceUSD(n)
}

type WhopProductPayload struct {
	ProductName        string   `json:"productName"`
	LongDescription    string   `json:"longDescription"`
	SuggestedPriceUSD  PriceUSD `json:"suggestedPriceUSD"`
	PriceJustification string   `json:"priceJustification"`
}

type MarketingAssets struct {
	LaunchAnnouncementHeadline string `json:"launchAnnouncementHeadline"`
	LaunchAnnouncementBody     string `json:"launchAnnouncementBody"`
	CommunityWelcomePost       string `json:"communityWelcomePost"`
}

type WhopAPISnippet struct {
	Endpoint string         `json:"endpoint"`
	Method   string         `json:"method"`
	Payload  map[string]any `json:"payload"`
}

// Blueprint is the deployable launch package compiled from a concept and angle.
type Blueprint struct {
	WhopProductPayload *WhopProductPayload `json:"whopProductPayload"`
	MarketingAssets    *MarketingAssets    `json:"marketingAssets"`
	WhopAPISnippet     *WhopAPISnippet     `json:"whopApiSnippet,omitempty"`
	GeneratedAt        time.Time           `json:"generatedAt"`
	Agent              string              `json:"agent"`
}

type ImagePrompts struct {
	ProductThumbnail string `json:"productThumbnail_1x1"`
	HeroImage        string `json:"heroImage_16x9"`
	SocialAdCreative string `json:"socialAdCreative_4x5"`
}

func (p ImagePrompts) Complete() bool {
	return p.ProductThumbnail != "" && p.HeroImage != "" && p.SocialAdCreative != ""
}

// AssetPack is the visual direction generated for one marketing angle.
type AssetPack struct {
	AngleType      string       `json:"angleType"`
	VisualMetaphor string       `json:"visualMetaphor"`
	StyleMood      string       `json:"styleMood"`
	ImagePrompts   ImagePrompts `json:"imagePrompts"`
	GeneratedAt    time.Time    `json:"generatedAt"`
	Agent          string       `json:"agent"`
}

// PublishRequest is the payload of an asynchronous publish job.
type PublishRequest struct {
	UserID          string           `json:"user_id"`
	Trend           string           `json:"trend"`
	StoreID         string           `json:"store_id" validate:"required,excludesall=/?#%"`
	CommunityID     string           `json:"community_id,omitempty" validate:"omitempty,excludesall=/?#%"`
	ProductName     string           `json:"product_name" validate:"required"`
	Description     string           `json:"description"`
	Content         string           `json:"content"`
	PriceUSD        PriceUSD         `json:"price_usd"`
	Tags            []string         `json:"tags,omitempty"`
	MarketingAssets *MarketingAssets `json:"marketing_assets,omitempty"`
}

type PublishResult struct {
	ProductID  string `json:"product_id"`
	ProductURL string `json:"product_url"`
	PostID     string `json:"post_id,omitempty"`
	PostURL    string `json:"post_url,omitempty"`
}
