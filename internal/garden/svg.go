package garden

import (
	"fmt"
	"strings"
)

// Leaf fill per health bucket.
var bucketFill = map[HealthBucket]string{
	HealthHealthy: "#4caf50",
	HealthWarning: "#fbc02d",
	HealthDying:   "#ff7043",
	HealthDormant: "#9e9e9e",
}

var xmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

// SVG renders leaf positions as a standalone SVG document on a square canvas
// of side 2*canvasRadius. Consumers that want richer rendering should use the
// LeafPosition list directly.
func SVG(positions []LeafPosition, canvasRadius float64) string {
	side := 2 * canvasRadius
	var b strings.Builder
	fmt.Fprintf(&b, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%.0f\" height=\"%.0f\" viewBox=\"0 0 %.0f %.0f\">\n",
		side, side, side, side)

	// Trunk dot at the center.
	fmt.Fprintf(&b, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"#6d4c41\"/>\n", canvasRadius, canvasRadius)

	for _, p := range positions {
		fmt.Fprintf(&b,
			"<ellipse cx=\"%.2f\" cy=\"%.2f\" rx=\"%.2f\" ry=\"%.2f\" fill=\"%s\" transform=\"rotate(%.1f %.2f %.2f)\"><title>%s</title></ellipse>\n",
			p.X, p.Y, 9*p.Scale, 4.5*p.Scale, bucketFill[p.Bucket],
			p.RotationDegrees, p.X, p.Y, xmlEscaper.Replace(p.Name))
	}

	b.WriteString("</svg>\n")
	return b.String()
}
