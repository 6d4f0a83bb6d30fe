package domain

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// IntWithDefault returns the first non-zero int value, or the fallback.
func IntWithDefault(fallback int, vals ...int) int {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return fallback
}

// IntFromPtrWithDefault returns the first non-nil, non-zero pointed-to int,
// or the fallback.
func IntFromPtrWithDefault(fallback int, vals ...*int) int {
	for _, v := range vals {
		if v != nil && *v != 0 {
			return *v
		}
	}
	return fallback
}

// Float64WithDefault returns the first non-zero float64 value, or the fallback.
func Float64WithDefault(fallback float64, vals ...float64) float64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return fallback
}
