package currency

// aliases maps a trimmed, lowercased currency name or symbol to its canonical code.
// It is read-only after package initialization.
var aliases = map[string]string{
	// Fiat
	"usd": "USD", "dollar": "USD", "us dollar": "USD", "$": "USD",
	"eur": "EUR", "euro": "EUR", "€": "EUR",
	"gbp": "GBP", "pound": "GBP", "sterling": "GBP",
	"jpy": "JPY", "yen": "JPY",
	"cny": "CNY", "yuan": "CNY", "rmb": "CNY",
	"rub": "RUB", "ruble": "RUB", "rouble": "RUB",
	"kzt": "KZT", "tenge": "KZT",
	"try": "TRY", "lira": "TRY",
	"chf": "CHF", "franc": "CHF",
	"uah": "UAH", "hryvnia": "UAH",
	"kgs": "KGS", "krs": "KGS", "som": "KGS",
	"inr": "INR", "rupee": "INR",
	"aed": "AED", "dirham": "AED",
	"cad": "CAD", "canadian dollar": "CAD",
	"aud": "AUD", "australian dollar": "AUD",
	"nok": "NOK", "sek": "SEK", "dkk": "DKK",
	"pln": "PLN", "zloty": "PLN",
	"huf": "HUF", "forint": "HUF",
	"brl": "BRL", "real": "BRL",
	"mxn": "MXN", "peso": "MXN",
	"zar": "ZAR", "rand": "ZAR",
	"krw": "KRW", "won": "KRW",
	"tjs": "TJS", "mdl": "MDL", "amd": "AMD",
	"thb": "THB", "myr": "MYR", "ringgit": "MYR",
	"gel": "GEL", "ils": "ILS", "shekel": "ILS",

	// Fiat, Russian
	"доллар": "USD", "американский доллар": "USD",
	"евро":  "EUR",
	"фунт":  "GBP", "фунт стерлингов": "GBP",
	"йена": "JPY", "иена": "JPY",
	"юань":  "CNY",
	"рубль": "RUB", "руб": "RUB", "₽": "RUB",
	"тенге": "KZT",
	"лира":  "TRY",
	"франк": "CHF",
	"гривна": "UAH", "ривна": "UAH",
	"сом":    "KGS",
	"рупия":  "INR",
	"дирхам": "AED",
	"злотый": "PLN", "форинт": "HUF",
	"реал":  "BRL",
	"песо":  "MXN",
	"ранд":  "ZAR",
	"вона": "KRW", "вон": "KRW",
	"сомони": "TJS", "лей": "MDL", "драм": "AMD",
	"бат": "THB", "ринггит": "MYR",
	"лари": "GEL", "шекель": "ILS",
	"крона": "SEK", "кроны": "SEK", "норвежская крона": "NOK",
	"датская крона":        "DKK",
	"австралийский доллар": "AUD",
	"канадский доллар":     "CAD",

	// Crypto
	"btc": "BTC", "bitcoin": "BTC", "биткоин": "BTC", "биток": "BTC",
	"eth": "ETH", "ethereum": "ETH", "эфир": "ETH",
	"usdt": "USDT", "tether": "USDT", "тезер": "USDT", "тетер": "USDT",
	"usdc": "USDC", "usd coin": "USDC",
	"bnb": "BNB",
	"xrp": "XRP",
	"ada": "ADA", "cardano": "ADA",
	"sol": "SOL", "solana": "SOL",
	"trx": "TRX", "tron": "TRX",
	"doge": "DOGE", "dogecoin": "DOGE", "додж": "DOGE",
	"ton": "TON", "тон": "TON", "toncoin": "TON", "the open network": "TON",
	"dot": "DOT", "polkadot": "DOT",
	"link": "LINK", "chainlink": "LINK",
	"ltc": "LTC", "litecoin": "LTC",
	"bch": "BCH", "bitcoin cash": "BCH",
	"avax": "AVAX", "avalanche": "AVAX",
	"xmr": "XMR", "monero": "XMR",
	"etc": "ETC", "ethereum classic": "ETC",
	"atom": "ATOM", "cosmos": "ATOM",
	"near":  "NEAR",
	"matic": "MATIC", "polygon": "MATIC",
	"dai": "DAI",
}
