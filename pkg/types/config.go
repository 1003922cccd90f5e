package types

// IndexConfig holds settings for one indexing run.
type IndexConfig struct {
	// RecipesDir is the root directory scanned for recipe documents.
	RecipesDir string `json:"recipes_dir" yaml:"recipes_dir"`

	// OutputDir is the directory that receives the index file and the copy
	// subdirectory (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// OutputFile is the index filename (default "recipes_index.json").
	// A .yaml or .yml extension selects YAML encoding, anything else JSON.
	OutputFile string `json:"output_file" yaml:"output_file"`

	// CopyDirName is the subdirectory under OutputDir that receives the
	// renamed copies of the source files (default "recipes").
	CopyDirName string `json:"copy_dir" yaml:"copy_dir"`

	// PreviewLength is the maximum preview length in characters
	// (default 200). The ellipsis marker does not count against it.
	PreviewLength int `json:"preview_length" yaml:"preview_length"`
}

// CatalogConfig holds settings for the catalog stage.
type CatalogConfig struct {
	// OutputDir is the directory holding the index file and the catalog
	// database (default ".").
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// IndexFile is the index file to load (default "recipes_index.json").
	IndexFile string `json:"index_file" yaml:"index_file"`

	// DBFile is the catalog database filename (default "recipes_catalog.db").
	DBFile string `json:"db_file" yaml:"db_file"`
}

// Config groups the stage configurations.
type Config struct {
	Index   IndexConfig   `json:"index" yaml:"index"`
	Catalog CatalogConfig `json:"catalog" yaml:"catalog"`
}
