//go:build fu540_qemu

package fu540

const emulated = true
