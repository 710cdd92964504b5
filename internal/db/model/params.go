package model

const ParamsCollection = "params"

// ParamsId is the primary key of the single runtime params document.
const ParamsId = "ledger_params"

// ParamsDocument holds the admin-owned runtime configuration of the ledger.
// It is seeded from the config file on first boot and mutated only through
// the admin surface afterwards.
type ParamsDocument struct {
	Id               string `bson:"_id"`
	CooldownSeconds  int64  `bson:"cooldown_seconds"`
	AppId            string `bson:"app_id"`
	AttestationPkHex string `bson:"attestation_pk_hex"`
	VerifierAddress  string `bson:"verifier_address"`
	Paused           bool   `bson:"paused"`
}
