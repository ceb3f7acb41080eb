package schema

// Descriptor carries the static display metadata attached to a derived
// category or asset type. The tables below are lookup constants; they are
// never mutated at runtime.
type Descriptor struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// CategoryDescriptors maps every category to its display descriptor.
var CategoryDescriptors = map[Category]Descriptor{
	CategoryAI:       {Label: "AI & Machine Learning", Color: "#7c3aed", Icon: "🤖"},
	CategoryData:     {Label: "Data & Analytics", Color: "#0ea5e9", Icon: "📊"},
	CategoryInfra:    {Label: "Infrastructure", Color: "#f59e0b", Icon: "🏗️"},
	CategorySecurity: {Label: "Security", Color: "#dc2626", Icon: "🛡️"},
	CategoryAppDev:   {Label: "App Development", Color: "#16a34a", Icon: "🧩"},
	CategoryOther:    {Label: "Other", Color: "#6b7280", Icon: "📁"},
}

// AssetTypeDescriptors maps every asset type to its display descriptor.
var AssetTypeDescriptors = map[AssetType]Descriptor{
	AssetTypeDemo:     {Label: "Demo", Color: "#2563eb", Icon: "🎬"},
	AssetTypeWorkshop: {Label: "Workshop", Color: "#9333ea", Icon: "🧪"},
	AssetTypeTool:     {Label: "Tool", Color: "#0d9488", Icon: "🔧"},
	AssetTypeTemplate: {Label: "Template", Color: "#ca8a04", Icon: "📐"},
	AssetTypeLibrary:  {Label: "Library", Color: "#db2777", Icon: "📚"},
	AssetTypeCode:     {Label: "Code", Color: "#6b7280", Icon: "💻"},
}

// Descriptor returns the display descriptor for a category. Unknown
// values fall back to the descriptor for CategoryOther, so the lookup is
// total like the classification itself.
func (c Category) Descriptor() Descriptor {
	if d, ok := CategoryDescriptors[c]; ok {
		return d
	}
	return CategoryDescriptors[CategoryOther]
}

// Descriptor returns the display descriptor for an asset type, falling back
// to the descriptor for AssetTypeCode for unknown values.
func (a AssetType) Descriptor() Descriptor {
	if d, ok := AssetTypeDescriptors[a]; ok {
		return d
	}
	return AssetTypeDescriptors[AssetTypeCode]
}
