package ntc

// DefaultTable is the factory calibration for a 10 kΩ (at 25 °C) NTC with a
// beta of roughly 3950 K, covering -40.0 °C to +40.0 °C in 1 °C steps. The
// table is ordered by decreasing resistance, the natural direction for an NTC
// (resistance falls as temperature rises)
var DefaultTable = Table{
	{4018597, -400},
	{3738102, -390},
	{3479326, -380},
	{3240432, -370},
	{3019752, -360},
	{2815768, -350},
	{2627100, -340},
	{2452489, -330},
	{2290790, -320},
	{2140958, -310},
	{2002039, -300},
	{1873164, -290},
	{1753536, -280},
	{1642428, -270},
	{1539176, -260},
	{1443169, -250},
	{1353851, -240},
	{1270710, -230},
	{1193276, -220},
	{1121120, -210},
	{1053847, -200},
	{991093, -190},
	{932524, -180},
	{877834, -170},
	{826740, -160},
	{778981, -150},
	{734319, -140},
	{692531, -130},
	{653415, -120},
	{616781, -110},
	{582457, -100},
	{550282, -90},
	{520106, -80},
	{491794, -70},
	{465218, -60},
	{440260, -50},
	{416813, -40},
	{394773, -30},
	{374049, -20},
	{354554, -10},
	{336206, 0},
	{318931, 10},
	{302660, 20},
	{287328, 30},
	{272875, 40},
	{259246, 50},
	{246387, 60},
	{234251, 70},
	{222793, 80},
	{211971, 90},
	{201746, 100},
	{192080, 110},
	{182941, 120},
	{174296, 130},
	{166115, 140},
	{158371, 150},
	{151039, 160},
	{144092, 170},
	{137510, 180},
	{131270, 190},
	{125353, 200},
	{119741, 210},
	{114415, 220},
	{109360, 230},
	{104559, 240},
	{100000, 250},
	{95668, 260},
	{91551, 270},
	{87636, 280},
	{83913, 290},
	{80371, 300},
	{77001, 310},
	{73793, 320},
	{70738, 330},
	{67828, 340},
	{65055, 350},
	{62413, 360},
	{59894, 370},
	{57492, 380},
	{55201, 390},
	{53015, 400},
}
