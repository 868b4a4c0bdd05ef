package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/url"
	"sort"
	"strings"
)

// Secret-key derivation label from the Telegram WebApp docs.
const initDataKeyLabel = "WebAppData"

var (
	ErrHashMissing  = errors.New("hash is missing")
	ErrBadSignature = errors.New("initData verification failed")
)

// Fields carrying JSON payloads inside initData.
var jsonInitDataFields = map[string]bool{
	"user":           true,
	"receiver":       true,
	"chat":           true,
	"can_send_after": true,
}

// VerifyInitData checks a Telegram WebApp initData string against the bot
// token. The signature scheme is double-keyed HMAC-SHA256: the secret key
// is HMAC_SHA256(label, botToken), the signed message is the
// lexicographically sorted key=value pairs (minus the hash field itself)
// joined with newlines. Returns the decoded payload on success.
func VerifyInitData(initData, botToken string) (map[string]interface{}, error) {
	pairs := map[string]string{}
	for _, part := range strings.Split(initData, "&") {
		if part == "" {
			continue
		}
		k, v, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		decoded, err := url.QueryUnescape(v)
		if err != nil {
			decoded = v
		}
		pairs[k] = decoded
	}

	providedHash, ok := pairs["hash"]
	if !ok || providedHash == "" {
		return nil, ErrHashMissing
	}
	delete(pairs, "hash")

	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+pairs[k])
	}
	dataCheckString := strings.Join(lines, "\n")

	secretMac := hmac.New(sha256.New, []byte(initDataKeyLabel))
	secretMac.Write([]byte(botToken))
	secretKey := secretMac.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(dataCheckString))
	calcHash := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(calcHash), []byte(providedHash)) {
		return nil, ErrBadSignature
	}

	out := make(map[string]interface{}, len(pairs))
	for k, v := range pairs {
		if jsonInitDataFields[k] {
			var decoded interface{}
			if err := json.Unmarshal([]byte(v), &decoded); err == nil {
				out[k] = decoded
				continue
			}
		}
		out[k] = v
	}

	return out, nil
}
