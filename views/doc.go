// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views renders the participant-facing and admin pages from embedded
html/template files.

The pages are deliberately plain: the survey is the product, the markup is
not. Each handler passes a small data struct and a template name:

	views.Render(w, "round.html", roundData{N: 3, Prefill: 40})
*/
package views
