// Package herumi implements the BLS signature scheme on the BLS12-381 curve
// backed by the herumi/bls-eth-go-binary library.
package herumi

import "github.com/herumi/bls-eth-go-binary/bls"

func init() {
	HerumiInit()
}

// HerumiInit allows the required curve orders and appropriate sub-groups to be initialized.
func HerumiInit() {
	if err := bls.Init(bls.BLS12_381); err != nil {
		panic(err)
	}
	if err := bls.SetETHmode(bls.EthModeDraft07); err != nil {
		panic(err)
	}
	// Check subgroup order for pubkeys and signatures.
	bls.VerifyPublicKeyOrder(true)
	bls.VerifySignatureOrder(true)
}
