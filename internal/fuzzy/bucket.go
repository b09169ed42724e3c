package fuzzy

// Bucket is one of the fixed five-minute idiom categories.
type Bucket uint8

const (
	OnTheHour Bucket = iota
	FivePast
	TenPast
	QuarterPast
	TwentyPast
	TwentyFivePast
	HalfPast
	TwentyFiveTo
	TwentyTo
	QuarterTo
	TenTo
	FiveTo

	bucketCount
)

// Family groups buckets by which hour their idiom refers to.
type Family uint8

const (
	FamilyOnTheHour Family = iota
	FamilyPast
	FamilyHalf
	FamilyTo
)

// Granularity is the rounding step in minutes.
const Granularity = 5

var bucketNames = [bucketCount]string{
	"on the hour",
	"five past",
	"ten past",
	"quarter past",
	"twenty past",
	"twenty five past",
	"half past",
	"twenty five to",
	"twenty to",
	"quarter to",
	"ten to",
	"five to",
}

func (b Bucket) String() string {
	if b >= bucketCount {
		return "invalid"
	}
	return bucketNames[b]
}

// Family reports the idiom family of b.
func (b Bucket) Family() Family {
	switch {
	case b == OnTheHour:
		return FamilyOnTheHour
	case b == HalfPast:
		return FamilyHalf
	case b < HalfPast:
		return FamilyPast
	default:
		return FamilyTo
	}
}

// BucketOf rounds minute to the nearest step. carry is true when the
// rounding lands on the next hour (minutes 58 and 59).
func BucketOf(minute int) (b Bucket, carry bool) {
	rounded := (minute + Granularity/2) / Granularity * Granularity
	if rounded >= 60 {
		return OnTheHour, true
	}
	return Bucket(rounded / Granularity), false
}

// SpokenHour returns the 0-23 hour an idiom names for hour and minute.
// "twenty to five" names five, so the to-family advances the hour.
func SpokenHour(hour, minute int) (int, Bucket) {
	b, carry := BucketOf(minute)
	if carry || b.Family() == FamilyTo {
		hour++
	}
	return hour % 24, b
}
