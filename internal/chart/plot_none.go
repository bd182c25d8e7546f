//go:build nochart

package chart

const backendName = "none"

func newBackend() Renderer {
	return nil
}
