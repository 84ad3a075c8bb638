//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// RetroRay reinterprets []float32 sample buffers and []uint32 ABGR
// framebuffers as raw bytes, which assumes little-endian byte order.
var _ = "RetroRay requires a little-endian architecture" + 1
