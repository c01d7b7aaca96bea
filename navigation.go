package main

// handleNavigation moves the selection. Moving past either end wraps around.
func (m *model) handleNavigation(key string) {
	n := len(m.diagrams)
	if n == 0 {
		m.selectedIndex = -1
		return
	}
	switch key {
	case "k", "up":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		} else {
			m.selectedIndex = n - 1
		}
	case "j", "down":
		if m.selectedIndex < n-1 {
			m.selectedIndex++
		} else {
			m.selectedIndex = 0
		}
	case "g", "home":
		m.selectedIndex = 0
	case "G", "end":
		m.selectedIndex = n - 1
	}
}

func isNavigationKey(key string) bool {
	switch key {
	case "k", "up", "j", "down", "g", "home", "G", "end":
		return true
	default:
		return false
	}
}
