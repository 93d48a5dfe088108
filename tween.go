package main

import "github.com/tanema/gween"

// Action couples a tween with what it animates and what runs when it ends.
type Action struct {
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

func (g *Game) addTween(t *gween.Tween, a Action) {
	g.Tweens[t] = a
}
