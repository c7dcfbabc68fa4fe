package fu540

//go:generate go run omibyte.io/prci/cmd/prci-gen -in fu540.svd -out .
