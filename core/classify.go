package core

import (
	"strings"

	"github.com/gbb-community/showcase/schema"
)

// categoryTopics maps each non-default category to the topic strings that
// select it. Matching is exact set membership over normalized topics, not
// substring search; categories are tried in schema.CategoryOrder.
var categoryTopics = map[schema.Category][]string{
	schema.CategoryAI: {
		"ai", "machine-learning", "ml", "deep-learning", "openai", "llm",
		"genai", "generative-ai", "agents", "agentic-ai", "copilot",
		"semantic-kernel", "rag",
	},
	schema.CategoryData: {
		"data", "analytics", "database", "databases", "etl", "fabric",
		"spark", "sql", "data-engineering", "lakehouse", "power-bi",
	},
	schema.CategoryInfra: {
		"infrastructure", "iac", "terraform", "bicep", "kubernetes", "aks",
		"networking", "devops", "platform-engineering", "landing-zone",
	},
	schema.CategorySecurity: {
		"security", "defender", "sentinel", "zero-trust", "identity",
		"entra", "compliance",
	},
	schema.CategoryAppDev: {
		"webapp", "web-app", "api", "frontend", "backend", "microservices",
		"serverless", "functions", "app-service", "containers",
	},
}

// assetTypeTopics maps each non-default asset type to the topic strings
// that select it, tried in schema.AssetTypeOrder.
var assetTypeTopics = map[schema.AssetType][]string{
	schema.AssetTypeDemo: {
		"demo", "demos", "sample", "samples", "example", "examples",
		"showcase",
	},
	schema.AssetTypeWorkshop: {
		"workshop", "workshops", "lab", "labs", "hands-on-lab", "tutorial",
		"training", "hackathon",
	},
	schema.AssetTypeTool: {
		"tool", "tools", "cli", "utility", "automation",
	},
	schema.AssetTypeTemplate: {
		"template", "templates", "starter", "starter-kit", "boilerplate",
		"scaffold", "accelerator",
	},
	schema.AssetTypeLibrary: {
		"library", "sdk", "package", "framework",
	},
}

// legacyCategoryKeywords is the backward-compatible keyword table. Unlike
// the topic tables it is matched by ordered substring search over a single
// lowercased name+description+topics string. Order matters: the first pair
// with any hit wins.
var legacyCategoryKeywords = []struct {
	category schema.Category
	keywords []string
}{
	{schema.CategoryAI, []string{"openai", "machine learning", "machine-learning", " ml ", "copilot", "llm", "gpt", "cognitive", " ai "}},
	{schema.CategoryData, []string{"analytics", "database", "synapse", "fabric", "data "}},
	{schema.CategorySecurity, []string{"security", "sentinel", "defender", "zero trust", "zero-trust"}},
	{schema.CategoryInfra, []string{"terraform", "bicep", "kubernetes", "infrastructure", "networking", "landing zone"}},
	{schema.CategoryAppDev, []string{"web app", "webapp", "microservice", "serverless", "api "}},
}

// DetectAssetCategory assigns a category from a repository's normalized
// topic list. Total: returns CategoryOther when no topic table intersects.
func DetectAssetCategory(repo *schema.Repository) schema.Category {
	topics := topicSet(repo)
	for _, cat := range schema.CategoryOrder {
		for _, t := range categoryTopics[cat] {
			if _, ok := topics[t]; ok {
				return cat
			}
		}
	}
	return schema.CategoryOther
}

// DetectAssetType assigns an asset type from a repository's normalized
// topic list. Total: returns AssetTypeCode when no topic table intersects.
func DetectAssetType(repo *schema.Repository) schema.AssetType {
	topics := topicSet(repo)
	for _, at := range schema.AssetTypeOrder {
		for _, t := range assetTypeTopics[at] {
			if _, ok := topics[t]; ok {
				return at
			}
		}
	}
	return schema.AssetTypeCode
}

// DetectCategoryLegacy is the keyword classifier kept for backward
// compatibility with older catalog data. It searches a combined
// name+description+topics string for ordered substring keywords, then falls
// back to a primary-language heuristic and finally CategoryOther. It can
// disagree with DetectAssetCategory on the same repository; callers select
// one strategy explicitly.
func DetectCategoryLegacy(repo *schema.Repository) schema.Category {
	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(strings.ToLower(repo.Name))
	sb.WriteString(" ")
	sb.WriteString(strings.ToLower(repo.Description))
	sb.WriteString(" ")
	sb.WriteString(strings.Join(repo.NormalizedTopics(), " "))
	sb.WriteString(" ")
	search := sb.String()

	for _, entry := range legacyCategoryKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(search, kw) {
				return entry.category
			}
		}
	}

	switch repo.PrimaryLanguage {
	case "HCL", "Bicep":
		return schema.CategoryInfra
	}
	return schema.CategoryOther
}

// CategorizeRepositories derives exactly one category and one asset type
// per repository and attaches the static display descriptors. When legacy
// is true the category comes from the keyword classifier instead of the
// topic tables; the asset type derivation is the same either way.
func CategorizeRepositories(repos []schema.Repository, legacy bool) []schema.CategorizedRepository {
	out := make([]schema.CategorizedRepository, 0, len(repos))
	for i := range repos {
		repo := repos[i]
		var cat schema.Category
		if legacy {
			cat = DetectCategoryLegacy(&repo)
		} else {
			cat = DetectAssetCategory(&repo)
		}
		at := DetectAssetType(&repo)
		out = append(out, schema.CategorizedRepository{
			Repository:          repo,
			Category:            cat,
			CategoryDescriptor:  cat.Descriptor(),
			AssetType:           at,
			AssetTypeDescriptor: at.Descriptor(),
		})
	}
	return out
}

// GroupByCategory buckets categorized repositories by category. Every
// category key is present, possibly with an empty slice.
func GroupByCategory(repos []schema.CategorizedRepository) map[schema.Category][]schema.CategorizedRepository {
	groups := make(map[schema.Category][]schema.CategorizedRepository, len(schema.CategoryOrder))
	for _, cat := range schema.CategoryOrder {
		groups[cat] = []schema.CategorizedRepository{}
	}
	for _, r := range repos {
		groups[r.Category] = append(groups[r.Category], r)
	}
	return groups
}

// GroupByAssetType buckets categorized repositories by asset type. Every
// asset type key is present, possibly with an empty slice.
func GroupByAssetType(repos []schema.CategorizedRepository) map[schema.AssetType][]schema.CategorizedRepository {
	groups := make(map[schema.AssetType][]schema.CategorizedRepository, len(schema.AssetTypeOrder))
	for _, at := range schema.AssetTypeOrder {
		groups[at] = []schema.CategorizedRepository{}
	}
	for _, r := range repos {
		groups[r.AssetType] = append(groups[r.AssetType], r)
	}
	return groups
}

// topicSet materializes the normalized topic list as a set for the exact
// membership checks.
func topicSet(repo *schema.Repository) map[string]struct{} {
	topics := repo.NormalizedTopics()
	set := make(map[string]struct{}, len(topics))
	for _, t := range topics {
		set[t] = struct{}{}
	}
	return set
}
