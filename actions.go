package mako

import "regexp"

// ActionPattern maps a label regex to a canonical action. The table is
// ordered: the first matching pattern wins for a given element.
type ActionPattern struct {
	Pattern     *regexp.Regexp
	Name        string
	Description string
}

// actionPatterns is the built-in multilingual action vocabulary.
// Patterns are matched case-insensitively against button/CTA labels.
// More specific intents come before generic ones.
var actionPatterns = []ActionPattern{
	{regexp.MustCompile(`(?i)add\s*to\s*cart|añadir\s*al\s*carrito|agregar\s*al\s*carrito`), "add_to_cart", "Add this product to the shopping cart"},
	{regexp.MustCompile(`(?i)buy\s*now|comprar\s*ahora`), "purchase", "Buy now"},
	{regexp.MustCompile(`(?i)purchase|comprar`), "purchase", "Purchase item"},
	{regexp.MustCompile(`(?i)check\s*out|finalizar\s*compra`), "checkout", "Proceed to checkout"},
	{regexp.MustCompile(`(?i)add\s*to\s*wishlist|lista\s*de\s*deseos`), "add_to_wishlist", "Add to wishlist"},
	{regexp.MustCompile(`(?i)subscribe|suscrib`), "subscribe", "Subscribe"},
	{regexp.MustCompile(`(?i)sign\s*up|get\s*started|try\s*free|start\s*trial|crear\s*cuenta|reg[íi]strate`), "sign_up", "Sign up for an account"},
	{regexp.MustCompile(`(?i)register|rsvp|inscrib`), "register", "Register"},
	{regexp.MustCompile(`(?i)log\s*in|sign\s*in|iniciar\s*sesi[óo]n|acceder`), "login", "Log in"},
	{regexp.MustCompile(`(?i)download|descargar`), "download", "Download"},
	{regexp.MustCompile(`(?i)contact(\s*us)?|cont[áa]cta`), "contact", "Contact"},
	{regexp.MustCompile(`(?i)book|reserve|reservar`), "book", "Book or reserve"},
	{regexp.MustCompile(`(?i)donate|donar`), "donate", "Donate"},
	{regexp.MustCompile(`(?i)share|compartir`), "share", "Share"},
	{regexp.MustCompile(`(?i)compare|comparar`), "compare", "Compare"},
	{regexp.MustCompile(`(?i)check\s*availability|comprobar\s*disponibilidad`), "check_availability", "Check availability"},
	{regexp.MustCompile(`(?i)apply(\s+now)?|solicitar`), "apply", "Apply"},
	{regexp.MustCompile(`(?i)learn\s*more|m[áa]s\s*informaci[óo]n|saber\s*m[áa]s`), "learn_more", "Learn more"},
	{regexp.MustCompile(`(?i)view\s*details|ver\s*detalles`), "view_details", "View details"},
	{regexp.MustCompile(`(?i)request\s*(demo|quote)|solicitar\s*(demo|presupuesto)`), "request_demo", "Request a demo or quote"},
}

// ActionPatterns returns the built-in action vocabulary. The returned
// slice is shared; callers must not modify it.
func ActionPatterns() []ActionPattern {
	return actionPatterns
}

// MatchAction matches a display label against the vocabulary and returns
// the canonical action. ok is false when no pattern matches.
func MatchAction(label string) (Action, bool) {
	for _, p := range actionPatterns {
		if p.Pattern.MatchString(label) {
			return Action{Name: p.Name, Description: p.Description}, true
		}
	}
	return Action{}, false
}
