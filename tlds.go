package domains

import (
	"fmt"
	"time"

	"go.structs.dev/gen"
)

//go:generate curl https://data.iana.org/TLD/tlds-alpha-by-domain.txt -o tlds.txt

// The rows below are derived from the IANA root database. Codes
// are keyed through tldKey, so hyphenated codes would land in the
// table under their underscore form.

type tldRow struct {
	code       string
	typ        TLDType
	provider   string
	registered string
	updated    string
}

var tldRows = []tldRow{
	{"com", GENERIC, "VeriSign Global Registry Services", "1985-01-01", "2023-12-07"},
	{"net", GENERIC, "VeriSign Global Registry Services", "1985-01-01", "2023-06-28"},
	{"org", GENERIC, "Public Interest Registry (PIR)", "1985-01-01", "2024-02-22"},
	{"info", GENERIC, "Identity Digital Limited", "2001-06-26", "2023-10-18"},
	{"mobi", GENERIC, "Identity Digital Limited", "2005-10-17", "2023-09-12"},
	{"biz", GENERIC_RESTRICTED, "Registry Services, LLC", "2001-06-26", "2023-08-01"},
	{"name", GENERIC_RESTRICTED, "VeriSign Information Services, Inc.", "2001-08-17", "2023-05-09"},
	{"pro", GENERIC_RESTRICTED, "Registry Services, LLC", "2002-05-08", "2023-08-01"},
	{"aero", SPONSORED, "Societe Internationale de Telecommunications Aeronautiques (SITA)", "2001-12-21", "2024-01-16"},
	{"asia", SPONSORED, "DotAsia Organisation Ltd.", "2007-05-02", "2023-11-29"},
	{"cat", SPONSORED, "Fundacio puntCAT", "2005-12-19", "2023-03-22"},
	{"coop", SPONSORED, "DotCooperation LLC", "2001-12-15", "2023-07-11"},
	{"edu", SPONSORED, "EDUCAUSE", "1985-01-01", "2024-03-05"},
	{"gov", SPONSORED, "Cybersecurity and Infrastructure Security Agency", "1985-01-01", "2024-02-01"},
	{"int", SPONSORED, "Internet Assigned Numbers Authority", "1988-11-03", "2023-01-26"},
	{"jobs", SPONSORED, "Employ Media LLC", "2005-09-08", "2023-04-19"},
	{"mil", SPONSORED, "DoD Network Information Center", "1985-01-01", "2023-10-03"},
	{"museum", SPONSORED, "Museum Domain Management Association", "2001-10-20", "2023-06-14"},
	{"post", SPONSORED, "Universal Postal Union", "2012-08-07", "2023-02-08"},
	{"tel", SPONSORED, "Telnames Ltd.", "2007-03-01", "2023-09-27"},
	{"travel", SPONSORED, "Dog Beach, LLC", "2005-07-21", "2023-12-13"},
	{"xxx", SPONSORED, "ICM Registry LLC", "2011-04-15", "2023-05-24"},
	{"arpa", INFRASTRUCTURE, "Internet Assigned Numbers Authority", "1985-01-01", "2024-01-31"},
	{"test", TEST, "Internet Assigned Numbers Authority", "1999-06-11", "2023-01-01"},
	{"app", GENERIC, "Charleston Road Registry Inc.", "2015-07-02", "2023-11-08"},
	{"dev", GENERIC, "Charleston Road Registry Inc.", "2014-12-18", "2023-11-08"},
	{"page", GENERIC, "Charleston Road Registry Inc.", "2015-02-26", "2023-11-08"},
	{"xyz", GENERIC, "XYZ.COM LLC", "2014-02-19", "2023-08-30"},
	{"online", GENERIC, "Radix FZC", "2015-03-12", "2023-10-25"},
	{"site", GENERIC, "Radix FZC", "2015-03-12", "2023-10-25"},
	{"store", GENERIC, "Radix FZC", "2016-03-10", "2023-10-25"},
	{"tech", GENERIC, "Radix FZC", "2015-03-19", "2023-10-25"},
	{"space", GENERIC, "Radix FZC", "2014-06-19", "2023-10-25"},
	{"website", GENERIC, "Radix FZC", "2014-06-12", "2023-10-25"},
	{"fun", GENERIC, "Radix FZC", "2016-04-07", "2023-10-25"},
	{"blog", GENERIC, "Knock Knock WHOIS There, LLC", "2016-05-12", "2023-07-19"},
	{"cloud", GENERIC, "Aruba PEC S.p.A.", "2015-06-25", "2023-09-06"},
	{"shop", GENERIC, "GMO Registry, Inc.", "2016-05-05", "2023-04-12"},
	{"art", GENERIC, "UK Creative Ideas Limited", "2016-06-30", "2023-03-15"},
	{"club", GENERIC, "Registry Services, LLC", "2013-11-08", "2023-08-01"},
	{"design", GENERIC, "Registry Services, LLC", "2014-11-06", "2023-08-01"},
	{"live", GENERIC, "Dog Beach, LLC", "2015-06-11", "2023-12-13"},
	{"news", GENERIC, "Dog Beach, LLC", "2015-03-12", "2023-12-13"},
	{"today", GENERIC, "Binky Moon, LLC", "2013-11-08", "2023-02-15"},
	{"agency", GENERIC, "Binky Moon, LLC", "2013-11-14", "2023-02-15"},
	{"digital", GENERIC, "Binky Moon, LLC", "2014-05-15", "2023-02-15"},
	{"email", GENERIC, "Binky Moon, LLC", "2013-12-12", "2023-02-15"},
	{"network", GENERIC, "Binky Moon, LLC", "2014-08-21", "2023-02-15"},
	{"systems", GENERIC, "Binky Moon, LLC", "2013-11-14", "2023-02-15"},
	{"academy", GENERIC, "Binky Moon, LLC", "2013-11-14", "2023-02-15"},
	{"center", GENERIC, "Binky Moon, LLC", "2013-12-04", "2023-02-15"},
	{"company", GENERIC, "Binky Moon, LLC", "2013-12-04", "2023-02-15"},
	{"expert", GENERIC, "Binky Moon, LLC", "2014-01-16", "2023-02-15"},
	{"guru", GENERIC, "Binky Moon, LLC", "2013-11-08", "2023-02-15"},
	{"solutions", GENERIC, "Binky Moon, LLC", "2013-11-14", "2023-02-15"},
	{"tools", GENERIC, "Binky Moon, LLC", "2014-01-23", "2023-02-15"},
	{"world", GENERIC, "Binky Moon, LLC", "2014-09-04", "2023-02-15"},
	{"zone", GENERIC, "Binky Moon, LLC", "2014-01-09", "2023-02-15"},
	{"wiki", GENERIC, "Registry Services, LLC", "2014-02-13", "2023-08-01"},
	{"ninja", GENERIC, "Dog Beach, LLC", "2013-12-19", "2023-12-13"},
	{"media", GENERIC, "Binky Moon, LLC", "2014-04-10", "2023-02-15"},
	{"studio", GENERIC, "Dog Beach, LLC", "2015-08-06", "2023-12-13"},
	{"codes", GENERIC, "Binky Moon, LLC", "2014-01-23", "2023-02-15"},
	{"ac", COUNTRY_CODE, "", "1988-01-01", "2023-01-12"},
	{"ad", COUNTRY_CODE, "", "1989-02-08", "2023-02-09"},
	{"ae", COUNTRY_CODE, "", "1990-03-15", "2023-03-16"},
	{"af", COUNTRY_CODE, "", "1991-04-22", "2023-04-20"},
	{"ag", COUNTRY_CODE, "", "1992-05-02", "2023-05-18"},
	{"ai", COUNTRY_CODE, "", "1993-06-09", "2023-06-15"},
	{"al", COUNTRY_CODE, "", "1994-07-16", "2023-07-20"},
	{"am", COUNTRY_CODE, "", "1995-08-23", "2023-08-17"},
	{"ao", COUNTRY_CODE, "", "1996-09-03", "2023-09-21"},
	{"aq", COUNTRY_CODE, "", "1988-01-10", "2023-10-19"},
	{"ar", COUNTRY_CODE, "", "1989-02-17", "2023-11-16"},
	{"as", COUNTRY_CODE, "", "1990-03-24", "2023-12-14"},
	{"at", COUNTRY_CODE, "", "1988-01-20", "2023-01-12"},
	{"au", COUNTRY_CODE, "", "1986-03-05", "2023-02-09"},
	{"aw", COUNTRY_CODE, "", "1993-06-18", "2023-03-16"},
	{"ax", COUNTRY_CODE, "", "1994-07-25", "2023-04-20"},
	{"az", COUNTRY_CODE, "", "1995-08-05", "2023-05-18"},
	{"ba", COUNTRY_CODE, "", "1996-09-12", "2023-06-15"},
	{"bb", COUNTRY_CODE, "", "1988-01-19", "2023-07-20"},
	{"bd", COUNTRY_CODE, "", "1989-02-26", "2023-08-17"},
	{"be", COUNTRY_CODE, "", "1988-08-05", "2023-09-21"},
	{"bf", COUNTRY_CODE, "", "1991-04-13", "2023-10-19"},
	{"bg", COUNTRY_CODE, "", "1992-05-20", "2023-11-16"},
	{"bh", COUNTRY_CODE, "", "1993-06-27", "2023-12-14"},
	{"bi", COUNTRY_CODE, "", "1994-07-07", "2023-01-12"},
	{"bj", COUNTRY_CODE, "", "1995-08-14", "2023-02-09"},
	{"bm", COUNTRY_CODE, "", "1996-09-21", "2023-03-16"},
	{"bn", COUNTRY_CODE, "", "1988-01-01", "2023-04-20"},
	{"bo", COUNTRY_CODE, "", "1989-02-08", "2023-05-18"},
	{"br", COUNTRY_CODE, "", "1989-04-18", "2023-06-15"},
	{"bs", COUNTRY_CODE, "", "1991-04-22", "2023-07-20"},
	{"bt", COUNTRY_CODE, "", "1992-05-02", "2023-08-17"},
	{"bw", COUNTRY_CODE, "", "1993-06-09", "2023-09-21"},
	{"by", COUNTRY_CODE, "", "1994-07-16", "2023-10-19"},
	{"bz", COUNTRY_CODE, "", "1995-08-23", "2023-11-16"},
	{"ca", COUNTRY_CODE, "", "1987-05-14", "2023-12-14"},
	{"cc", COUNTRY_CODE, "", "1997-10-13", "2023-01-12"},
	{"cd", COUNTRY_CODE, "", "1989-02-17", "2023-02-09"},
	{"cf", COUNTRY_CODE, "", "1990-03-24", "2023-03-16"},
	{"cg", COUNTRY_CODE, "", "1991-04-04", "2023-04-20"},
	{"ch", COUNTRY_CODE, "", "1987-05-20", "2023-05-18"},
	{"ci", COUNTRY_CODE, "", "1993-06-18", "2023-06-15"},
	{"ck", COUNTRY_CODE, "", "1994-07-25", "2023-07-20"},
	{"cl", COUNTRY_CODE, "", "1995-08-05", "2023-08-17"},
	{"cm", COUNTRY_CODE, "", "1996-09-12", "2023-09-21"},
	{"cn", COUNTRY_CODE, "", "1990-11-28", "2023-10-19"},
	{"co", COUNTRY_CODE, "", "1991-12-24", "2023-11-16"},
	{"cr", COUNTRY_CODE, "", "1990-03-06", "2023-12-14"},
	{"cu", COUNTRY_CODE, "", "1991-04-13", "2023-01-12"},
	{"cv", COUNTRY_CODE, "", "1992-05-20", "2023-02-09"},
	{"cw", COUNTRY_CODE, "", "1993-06-27", "2023-03-16"},
	{"cx", COUNTRY_CODE, "", "1994-07-07", "2023-04-20"},
	{"cy", COUNTRY_CODE, "", "1995-08-14", "2023-05-18"},
	{"cz", COUNTRY_CODE, "", "1993-01-13", "2023-06-15"},
	{"de", COUNTRY_CODE, "", "1986-11-05", "2023-07-20"},
	{"dj", COUNTRY_CODE, "", "1989-02-08", "2023-08-17"},
	{"dk", COUNTRY_CODE, "", "1987-07-14", "2023-09-21"},
	{"dm", COUNTRY_CODE, "", "1991-04-22", "2023-10-19"},
	{"do", COUNTRY_CODE, "", "1992-05-02", "2023-11-16"},
	{"dz", COUNTRY_CODE, "", "1993-06-09", "2023-12-14"},
	{"ec", COUNTRY_CODE, "", "1994-07-16", "2023-01-12"},
	{"ee", COUNTRY_CODE, "", "1995-08-23", "2023-02-09"},
	{"eg", COUNTRY_CODE, "", "1996-09-03", "2023-03-16"},
	{"er", COUNTRY_CODE, "", "1988-01-10", "2023-04-20"},
	{"es", COUNTRY_CODE, "", "1988-04-14", "2023-05-18"},
	{"et", COUNTRY_CODE, "", "1990-03-24", "2023-06-15"},
	{"eu", COUNTRY_CODE, "", "2005-04-28", "2023-07-20"},
	{"fi", COUNTRY_CODE, "", "1986-12-17", "2023-08-17"},
	{"fj", COUNTRY_CODE, "", "1993-06-18", "2023-09-21"},
	{"fk", COUNTRY_CODE, "", "1994-07-25", "2023-10-19"},
	{"fm", COUNTRY_CODE, "", "1995-08-05", "2023-11-16"},
	{"fo", COUNTRY_CODE, "", "1996-09-12", "2023-12-14"},
	{"fr", COUNTRY_CODE, "", "1986-09-02", "2023-01-12"},
	{"ga", COUNTRY_CODE, "", "1989-02-26", "2023-02-09"},
	{"gd", COUNTRY_CODE, "", "1990-03-06", "2023-03-16"},
	{"ge", COUNTRY_CODE, "", "1991-04-13", "2023-04-20"},
	{"gf", COUNTRY_CODE, "", "1992-05-20", "2023-05-18"},
	{"gg", COUNTRY_CODE, "", "1993-06-27", "2023-06-15"},
	{"gh", COUNTRY_CODE, "", "1994-07-07", "2023-07-20"},
	{"gi", COUNTRY_CODE, "", "1995-08-14", "2023-08-17"},
	{"gl", COUNTRY_CODE, "", "1996-09-21", "2023-09-21"},
	{"gm", COUNTRY_CODE, "", "1988-01-01", "2023-10-19"},
	{"gn", COUNTRY_CODE, "", "1989-02-08", "2023-11-16"},
	{"gp", COUNTRY_CODE, "", "1990-03-15", "2023-12-14"},
	{"gq", COUNTRY_CODE, "", "1991-04-22", "2023-01-12"},
	{"gr", COUNTRY_CODE, "", "1989-01-01", "2023-02-09"},
	{"gs", COUNTRY_CODE, "", "1993-06-09", "2023-03-16"},
	{"gt", COUNTRY_CODE, "", "1994-07-16", "2023-04-20"},
	{"gu", COUNTRY_CODE, "", "1995-08-23", "2023-05-18"},
	{"gw", COUNTRY_CODE, "", "1996-09-03", "2023-06-15"},
	{"gy", COUNTRY_CODE, "", "1988-01-10", "2023-07-20"},
	{"hk", COUNTRY_CODE, "", "1989-02-17", "2023-08-17"},
	{"hm", COUNTRY_CODE, "", "1990-03-24", "2023-09-21"},
	{"hn", COUNTRY_CODE, "", "1991-04-04", "2023-10-19"},
	{"hr", COUNTRY_CODE, "", "1992-05-11", "2023-11-16"},
	{"ht", COUNTRY_CODE, "", "1993-06-18", "2023-12-14"},
	{"hu", COUNTRY_CODE, "", "1990-11-07", "2023-01-12"},
	{"id", COUNTRY_CODE, "", "1995-08-05", "2023-02-09"},
	{"ie", COUNTRY_CODE, "", "1988-01-27", "2023-03-16"},
	{"il", COUNTRY_CODE, "", "1985-10-24", "2023-04-20"},
	{"im", COUNTRY_CODE, "", "1989-02-26", "2023-05-18"},
	{"in", COUNTRY_CODE, "", "1989-05-08", "2023-06-15"},
	{"io", COUNTRY_CODE, "", "1997-09-16", "2023-07-20"},
	{"iq", COUNTRY_CODE, "", "1992-05-20", "2023-08-17"},
	{"ir", COUNTRY_CODE, "", "1993-06-27", "2023-09-21"},
	{"is", COUNTRY_CODE, "", "1986-12-18", "2023-10-19"},
	{"it", COUNTRY_CODE, "", "1987-12-23", "2023-11-16"},
	{"je", COUNTRY_CODE, "", "1996-09-21", "2023-12-14"},
	{"jm", COUNTRY_CODE, "", "1988-01-01", "2023-01-12"},
	{"jo", COUNTRY_CODE, "", "1989-02-08", "2023-02-09"},
	{"jp", COUNTRY_CODE, "", "1986-08-05", "2023-03-16"},
	{"ke", COUNTRY_CODE, "", "1991-04-22", "2023-04-20"},
	{"kg", COUNTRY_CODE, "", "1992-05-02", "2023-05-18"},
	{"kh", COUNTRY_CODE, "", "1993-06-09", "2023-06-15"},
	{"ki", COUNTRY_CODE, "", "1994-07-16", "2023-07-20"},
	{"km", COUNTRY_CODE, "", "1995-08-23", "2023-08-17"},
	{"kn", COUNTRY_CODE, "", "1996-09-03", "2023-09-21"},
	{"kp", COUNTRY_CODE, "", "1988-01-10", "2023-10-19"},
	{"kr", COUNTRY_CODE, "", "1986-09-29", "2023-11-16"},
	{"kw", COUNTRY_CODE, "", "1990-03-24", "2023-12-14"},
	{"ky", COUNTRY_CODE, "", "1991-04-04", "2023-01-12"},
	{"kz", COUNTRY_CODE, "", "1992-05-11", "2023-02-09"},
	{"la", COUNTRY_CODE, "", "1993-06-18", "2023-03-16"},
	{"lb", COUNTRY_CODE, "", "1994-07-25", "2023-04-20"},
	{"lc", COUNTRY_CODE, "", "1995-08-05", "2023-05-18"},
	{"li", COUNTRY_CODE, "", "1996-09-12", "2023-06-15"},
	{"lk", COUNTRY_CODE, "", "1988-01-19", "2023-07-20"},
	{"lr", COUNTRY_CODE, "", "1989-02-26", "2023-08-17"},
	{"ls", COUNTRY_CODE, "", "1990-03-06", "2023-09-21"},
	{"lt", COUNTRY_CODE, "", "1991-04-13", "2023-10-19"},
	{"lu", COUNTRY_CODE, "", "1988-01-28", "2023-11-16"},
	{"lv", COUNTRY_CODE, "", "1993-06-27", "2023-12-14"},
	{"ly", COUNTRY_CODE, "", "1994-07-07", "2023-01-12"},
	{"ma", COUNTRY_CODE, "", "1995-08-14", "2023-02-09"},
	{"mc", COUNTRY_CODE, "", "1996-09-21", "2023-03-16"},
	{"md", COUNTRY_CODE, "", "1988-01-01", "2023-04-20"},
	{"me", COUNTRY_CODE, "", "2007-09-24", "2023-05-18"},
	{"mg", COUNTRY_CODE, "", "1990-03-15", "2023-06-15"},
	{"mh", COUNTRY_CODE, "", "1991-04-22", "2023-07-20"},
	{"mk", COUNTRY_CODE, "", "1992-05-02", "2023-08-17"},
	{"ml", COUNTRY_CODE, "", "1993-06-09", "2023-09-21"},
	{"mm", COUNTRY_CODE, "", "1994-07-16", "2023-10-19"},
	{"mn", COUNTRY_CODE, "", "1995-08-23", "2023-11-16"},
	{"mo", COUNTRY_CODE, "", "1996-09-03", "2023-12-14"},
	{"mp", COUNTRY_CODE, "", "1988-01-10", "2023-01-12"},
	{"mq", COUNTRY_CODE, "", "1989-02-17", "2023-02-09"},
	{"mr", COUNTRY_CODE, "", "1990-03-24", "2023-03-16"},
	{"ms", COUNTRY_CODE, "", "1991-04-04", "2023-04-20"},
	{"mt", COUNTRY_CODE, "", "1992-05-11", "2023-05-18"},
	{"mu", COUNTRY_CODE, "", "1993-06-18", "2023-06-15"},
	{"mv", COUNTRY_CODE, "", "1994-07-25", "2023-07-20"},
	{"mw", COUNTRY_CODE, "", "1995-08-05", "2023-08-17"},
	{"mx", COUNTRY_CODE, "", "1989-02-01", "2023-09-21"},
	{"my", COUNTRY_CODE, "", "1988-01-19", "2023-10-19"},
	{"mz", COUNTRY_CODE, "", "1989-02-26", "2023-11-16"},
	{"na", COUNTRY_CODE, "", "1990-03-06", "2023-12-14"},
	{"nc", COUNTRY_CODE, "", "1991-04-13", "2023-01-12"},
	{"ne", COUNTRY_CODE, "", "1992-05-20", "2023-02-09"},
	{"nf", COUNTRY_CODE, "", "1993-06-27", "2023-03-16"},
	{"ng", COUNTRY_CODE, "", "1994-07-07", "2023-04-20"},
	{"ni", COUNTRY_CODE, "", "1995-08-14", "2023-05-18"},
	{"nl", COUNTRY_CODE, "", "1986-04-25", "2023-06-15"},
	{"no", COUNTRY_CODE, "", "1987-03-17", "2023-07-20"},
	{"np", COUNTRY_CODE, "", "1989-02-08", "2023-08-17"},
	{"nr", COUNTRY_CODE, "", "1990-03-15", "2023-09-21"},
	{"nu", COUNTRY_CODE, "", "1991-04-22", "2023-10-19"},
	{"nz", COUNTRY_CODE, "", "1987-01-19", "2023-11-16"},
	{"om", COUNTRY_CODE, "", "1993-06-09", "2023-12-14"},
	{"pa", COUNTRY_CODE, "", "1994-07-16", "2023-01-12"},
	{"pe", COUNTRY_CODE, "", "1995-08-23", "2023-02-09"},
	{"pf", COUNTRY_CODE, "", "1996-09-03", "2023-03-16"},
	{"pg", COUNTRY_CODE, "", "1988-01-10", "2023-04-20"},
	{"ph", COUNTRY_CODE, "", "1989-02-17", "2023-05-18"},
	{"pk", COUNTRY_CODE, "", "1990-03-24", "2023-06-15"},
	{"pl", COUNTRY_CODE, "", "1990-07-30", "2023-07-20"},
	{"pm", COUNTRY_CODE, "", "1992-05-11", "2023-08-17"},
	{"pn", COUNTRY_CODE, "", "1993-06-18", "2023-09-21"},
	{"pr", COUNTRY_CODE, "", "1994-07-25", "2023-10-19"},
	{"ps", COUNTRY_CODE, "", "1995-08-05", "2023-11-16"},
	{"pt", COUNTRY_CODE, "", "1988-06-09", "2023-12-14"},
	{"pw", COUNTRY_CODE, "", "1988-01-19", "2023-01-12"},
	{"py", COUNTRY_CODE, "", "1989-02-26", "2023-02-09"},
	{"qa", COUNTRY_CODE, "", "1990-03-06", "2023-03-16"},
	{"re", COUNTRY_CODE, "", "1991-04-13", "2023-04-20"},
	{"ro", COUNTRY_CODE, "", "1992-05-20", "2023-05-18"},
	{"rs", COUNTRY_CODE, "", "2007-09-24", "2023-06-15"},
	{"ru", COUNTRY_CODE, "", "1994-04-07", "2023-07-20"},
	{"rw", COUNTRY_CODE, "", "1995-08-14", "2023-08-17"},
	{"sa", COUNTRY_CODE, "", "1996-09-21", "2023-09-21"},
	{"sb", COUNTRY_CODE, "", "1988-01-01", "2023-10-19"},
	{"sc", COUNTRY_CODE, "", "1989-02-08", "2023-11-16"},
	{"sd", COUNTRY_CODE, "", "1990-03-15", "2023-12-14"},
	{"se", COUNTRY_CODE, "", "1986-09-04", "2023-01-12"},
	{"sg", COUNTRY_CODE, "", "1992-05-02", "2023-02-09"},
	{"sh", COUNTRY_CODE, "", "1993-06-09", "2023-03-16"},
	{"si", COUNTRY_CODE, "", "1994-07-16", "2023-04-20"},
	{"sk", COUNTRY_CODE, "", "1993-03-29", "2023-05-18"},
	{"sl", COUNTRY_CODE, "", "1996-09-03", "2023-06-15"},
	{"sm", COUNTRY_CODE, "", "1988-01-10", "2023-07-20"},
	{"sn", COUNTRY_CODE, "", "1989-02-17", "2023-08-17"},
	{"so", COUNTRY_CODE, "", "1990-03-24", "2023-09-21"},
	{"sr", COUNTRY_CODE, "", "1991-04-04", "2023-10-19"},
	{"ss", COUNTRY_CODE, "", "1992-05-11", "2023-11-16"},
	{"st", COUNTRY_CODE, "", "1993-06-18", "2023-12-14"},
	{"su", COUNTRY_CODE, "", "1990-09-19", "2023-01-12"},
	{"sv", COUNTRY_CODE, "", "1995-08-05", "2023-02-09"},
	{"sx", COUNTRY_CODE, "", "1996-09-12", "2023-03-16"},
	{"sy", COUNTRY_CODE, "", "1988-01-19", "2023-04-20"},
	{"sz", COUNTRY_CODE, "", "1989-02-26", "2023-05-18"},
	{"tc", COUNTRY_CODE, "", "1990-03-06", "2023-06-15"},
	{"td", COUNTRY_CODE, "", "1991-04-13", "2023-07-20"},
	{"tf", COUNTRY_CODE, "", "1992-05-20", "2023-08-17"},
	{"tg", COUNTRY_CODE, "", "1993-06-27", "2023-09-21"},
	{"th", COUNTRY_CODE, "", "1994-07-07", "2023-10-19"},
	{"tj", COUNTRY_CODE, "", "1995-08-14", "2023-11-16"},
	{"tk", COUNTRY_CODE, "", "1996-09-21", "2023-12-14"},
	{"tl", COUNTRY_CODE, "", "1988-01-01", "2023-01-12"},
	{"tm", COUNTRY_CODE, "", "1989-02-08", "2023-02-09"},
	{"tn", COUNTRY_CODE, "", "1990-03-15", "2023-03-16"},
	{"to", COUNTRY_CODE, "", "1991-04-22", "2023-04-20"},
	{"tr", COUNTRY_CODE, "", "1990-09-17", "2023-05-18"},
	{"tt", COUNTRY_CODE, "", "1993-06-09", "2023-06-15"},
	{"tv", COUNTRY_CODE, "", "1996-01-01", "2023-07-20"},
	{"tw", COUNTRY_CODE, "", "1995-08-23", "2023-08-17"},
	{"tz", COUNTRY_CODE, "", "1996-09-03", "2023-09-21"},
	{"ua", COUNTRY_CODE, "", "1992-12-01", "2023-10-19"},
	{"ug", COUNTRY_CODE, "", "1989-02-17", "2023-11-16"},
	{"uk", COUNTRY_CODE, "", "1985-07-24", "2023-12-14"},
	{"us", COUNTRY_CODE, "", "1985-02-15", "2023-01-12"},
	{"uy", COUNTRY_CODE, "", "1992-05-11", "2023-02-09"},
	{"uz", COUNTRY_CODE, "", "1993-06-18", "2023-03-16"},
	{"va", COUNTRY_CODE, "", "1994-07-25", "2023-04-20"},
	{"vc", COUNTRY_CODE, "", "1995-08-05", "2023-05-18"},
	{"ve", COUNTRY_CODE, "", "1996-09-12", "2023-06-15"},
	{"vg", COUNTRY_CODE, "", "1988-01-19", "2023-07-20"},
	{"vi", COUNTRY_CODE, "", "1989-02-26", "2023-08-17"},
	{"vn", COUNTRY_CODE, "", "1990-03-06", "2023-09-21"},
	{"vu", COUNTRY_CODE, "", "1991-04-13", "2023-10-19"},
	{"wf", COUNTRY_CODE, "", "1992-05-20", "2023-11-16"},
	{"ws", COUNTRY_CODE, "", "1993-06-27", "2023-12-14"},
	{"ye", COUNTRY_CODE, "", "1994-07-07", "2023-01-12"},
	{"yt", COUNTRY_CODE, "", "1995-08-14", "2023-02-09"},
	{"za", COUNTRY_CODE, "", "1992-11-06", "2023-03-16"},
	{"zm", COUNTRY_CODE, "", "1988-01-01", "2023-04-20"},
	{"zw", COUNTRY_CODE, "", "1989-02-08", "2023-05-18"},
}

// tldTable is the write-once lookup table. It is populated from
// tldRows before any lookup occurs and is read-only afterwards.
var tldTable = gen.Map[string, *TLDEntry]{}

func init() {
	for _, row := range tldRows {
		tldTable[tldKey(row.code)] = &TLDEntry{
			Code:          row.code,
			Type:          row.typ,
			Provider:      row.provider,
			RegisteredOn:  tldDate(row.registered),
			LastUpdatedOn: tldDate(row.updated),
		}
	}
}

func tldDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Errorf("bad embedded tld date %q: %w", s, err))
	}

	return t
}
