package xkey

// Key is the minimal capability shared by XPrv and XPub: enough for a
// parent to hand its public identity to a child during derivation and for
// callers to read the depth, child number and chain code of either kind.
// The version prefix and parent fingerprint are not part of it.
type Key interface {
	ChainCode() [32]byte
	ChildNumber() uint32
	Depth() uint8
	Fingerprint() [4]byte
	CompressedPublic() [33]byte
}

var (
	_ Key = (*XPrv)(nil)
	_ Key = (*XPub)(nil)
)
