package check

import (
	"regexp"

	"github.com/leapstack-labs/nbcheck/pkg/notebook"
)

// Project layout the catalog refers to.
const (
	FramingNotebookPath       = "notebooks/01_problem_framing.ipynb"
	UnderstandingNotebookPath = "notebooks/02_data_understanding.ipynb"
	RedWinePath               = "data/winequality-red.csv"
	WhiteWinePath             = "data/winequality-white.csv"
)

// Band is an inclusive tolerance band for a tabular shape.
type Band struct {
	MinRows, MaxRows int
	MinCols, MaxCols int
}

// Contains reports whether rows and cols both fall within the band.
func (b Band) Contains(rows, cols int) bool {
	return rows >= b.MinRows && rows <= b.MaxRows && cols >= b.MinCols && cols <= b.MaxCols
}

// Catalog holds every declarative rule spec the checks evaluate against:
// required artifact paths, required patterns, and required dependency
// names. A Catalog is built once at startup and never mutated; checks
// receive it by reference through the Context.
type Catalog struct {
	// RequiredFiles are relative paths that must exist under the root.
	RequiredFiles []string

	// IgnorePatterns must each match somewhere in .gitignore.
	IgnorePatterns []notebook.Pattern

	// MinRequirements are dependency names that must appear in
	// requirements.txt (case-insensitive, version pins ignored).
	MinRequirements []string

	// FramingMarkers are topical markers expected across markdown and
	// code cells of the problem-framing notebook.
	FramingMarkers []notebook.Pattern

	// ReproMarkers signal a reproducibility cell; at least one must
	// appear in the framing notebook's code cells.
	ReproMarkers []notebook.Pattern

	// LoadMarkers are code markers expected in the data-understanding
	// notebook: CSV load, separator literal, type labeling, concat.
	LoadMarkers []notebook.Pattern

	// VisMarkers signal a class-balance visualization call.
	VisMarkers []notebook.Pattern

	// InterpKeywords mark interpretation notes under figures.
	InterpKeywords []string

	// MinInterpWords is the minimum word count for a markdown cell to
	// count as an interpretation note.
	MinInterpWords int

	// FitCall matches a model-training invocation.
	FitCall *regexp.Regexp

	// ClassifierNames are estimator class names whose presence in code
	// means training has leaked into the exploration notebook.
	ClassifierNames []string

	// RedShape and WhiteShape approximate the UCI wine-quality dataset
	// sizes (red: 1599x12, white: 4898x12).
	RedShape, WhiteShape Band
}

// DefaultCatalog returns the catalog for the classification-project
// deliverable.
func DefaultCatalog() *Catalog {
	return &Catalog{
		RequiredFiles: []string{
			FramingNotebookPath,
			UnderstandingNotebookPath,
			RedWinePath,
			WhiteWinePath,
			"README.md",
			"requirements.txt",
			".gitignore",
		},
		IgnorePatterns: []notebook.Pattern{
			ignoreRule(`\.ipynb_checkpoints/`),
			ignoreRule(`venv/`),
			ignoreRule(`__pycache__/`),
			ignoreRule(`results/`),
			ignoreRule(`notebooks/03_.*`),
			ignoreRule(`notebooks/04_.*`),
			ignoreRule(`notebooks/05_.*`),
		},
		MinRequirements: []string{"pandas", "numpy", "scikit-learn", "matplotlib", "seaborn"},
		FramingMarkers: []notebook.Pattern{
			notebook.MustPattern("title", `Wine Classification`),
			notebook.MustPattern("framing header", `Problem Framing`),
			notebook.MustPattern("UCI citation", `UCI.*Wine Quality|Wine Quality.*UCI`),
			notebook.MustPattern("class description", `red\s*vs\.?\s*white|red.*white`),
			notebook.MustPattern("ethics/stakeholders", `stakeholder|impact|ethic|sustainab`),
		},
		ReproMarkers: []notebook.Pattern{
			notebook.MustPattern("library versions", `__version__`),
			notebook.MustPattern("fixed seed", `random_state\s*=\s*42`),
		},
		LoadMarkers: []notebook.Pattern{
			notebook.MustPattern("read_csv", `read_csv`),
			notebook.MustPattern("separator ';'", `sep\s*=\s*["'];["']`),
			notebook.MustPattern("type label", `(?:\['type'\]|type)\s*=`),
			notebook.MustPattern("concat", `concat\(`),
		},
		VisMarkers: []notebook.Pattern{
			notebook.MustPattern("value_counts", `value_counts\(`),
			notebook.MustPattern("countplot", `countplot`),
			notebook.MustPattern("bar", `barh?\(`),
			notebook.MustPattern("plot", `plot\(`),
			notebook.MustPattern("hist", `hist\(`),
		},
		InterpKeywords: []string{"interpretation", "insight", "insights"},
		MinInterpWords: 20,
		FitCall:        regexp.MustCompile(`\.fit\s*\(`),
		ClassifierNames: []string{
			"LogisticRegression", "RandomForest", "RandomForestClassifier",
			"GradientBoosting", "GradientBoostingClassifier", "SVC", "KNeighborsClassifier",
			"XGBClassifier", "DecisionTreeClassifier", "GaussianNB", "BernoulliNB",
			"MultinomialNB", "LinearSVC", "LinearDiscriminantAnalysis", "QuadraticDiscriminantAnalysis",
		},
		RedShape:   Band{MinRows: 1500, MaxRows: 1700, MinCols: 11, MaxCols: 13},
		WhiteShape: Band{MinRows: 4700, MaxRows: 5100, MinCols: 11, MaxCols: 13},
	}
}

// ignoreRule compiles a .gitignore pattern for multiline search. The raw
// expression doubles as the pattern name so WARN details echo exactly what
// to add to the file.
func ignoreRule(expr string) notebook.Pattern {
	return notebook.Pattern{Name: expr, Re: regexp.MustCompile(`(?m)` + expr)}
}
