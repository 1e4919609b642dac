package targets

import "path/filepath"

// Target is one icon file to produce.
type Target struct {
	Label string
	Size  int
	Path  string
}

// Density is an Android launcher mipmap bucket.
type Density struct {
	Label string
	Size  int
}

// Densities is the launcher size table in generation order.
var Densities = []Density{
	{Label: "mipmap-mdpi", Size: 48},
	{Label: "mipmap-hdpi", Size: 72},
	{Label: "mipmap-xhdpi", Size: 96},
	{Label: "mipmap-xxhdpi", Size: 144},
	{Label: "mipmap-xxxhdpi", Size: 192},
}

const (
	LauncherFile = "ic_launcher.png"

	AssetLabel = "app-icon"
	AssetSize  = 1024
)

// AndroidResDir is the Android resource directory under the project root.
func AndroidResDir(root string) string {
	return filepath.Join(root, "android", "app", "src", "main", "res")
}

// AssetPath is where the high-resolution app icon lives.
func AssetPath(root string) string {
	return filepath.Join(root, "assets", "images", "app_icon.png")
}

// All returns the launcher targets in table order followed by the
// high-resolution asset.
func All(root string) []Target {
	res := AndroidResDir(root)
	out := make([]Target, 0, len(Densities)+1)
	for _, d := range Densities {
		out = append(out, Target{
			Label: d.Label,
			Size:  d.Size,
			Path:  filepath.Join(res, d.Label, LauncherFile),
		})
	}
	return append(out, Target{Label: AssetLabel, Size: AssetSize, Path: AssetPath(root)})
}
