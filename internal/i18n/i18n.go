// Package i18n holds the static translation tables for Arabic, French and
// English. Arabic is the primary language and the fallback for missing keys.
package i18n

// Supported language codes.
const (
	Arabic  = "ar"
	French  = "fr"
	English = "en"
)

// Fallback is the language used when a key is missing from the requested
// table.
const Fallback = Arabic

// IsRTL reports whether lang renders right-to-left.
func IsRTL(lang string) bool {
	return lang == Arabic
}

// Supported reports whether lang has a translation table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// T resolves key for lang, falling back to Arabic and finally to the key
// itself so the UI never renders an empty label.
func T(lang, key string) string {
	if table, ok := tables[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := tables[Fallback][key]; ok {
		return v
	}
	return key
}

var tables = map[string]map[string]string{
	Arabic: {
		"common.loading":  "جاري التحميل...",
		"common.error":    "حدث خطأ، الرجاء المحاولة مرة أخرى",
		"common.noResults": "لا توجد رحلات متاحة تطابق معايير البحث",

		"cities.algiers":        "الجزائر",
		"cities.oran":           "وهران",
		"cities.constantine":    "قسنطينة",
		"cities.annaba":         "عنابة",
		"cities.setif":          "سطيف",
		"cities.batna":          "باتنة",
		"cities.blida":          "البليدة",
		"cities.sidi_bel_abbes": "سيدي بلعباس",
		"cities.tlemcen":        "تلمسان",
		"cities.biskra":         "بسكرة",

		"bus.type.standard": "عادي",
		"bus.type.premium":  "ممتاز",
		"bus.type.vip":      "VIP",
		"bus.seatTaken":     "المقعد محجوز بالفعل. الرجاء اختيار مقعد آخر.",
		"bus.chooseSeat":    "الرجاء اختيار مقعد",
		"bus.passengerData": "الرجاء إدخال بيانات المسافر",

		"booking.status.pending":   "قيد الانتظار",
		"booking.status.confirmed": "مؤكد",
		"booking.status.canceled":  "ملغى",
		"booking.status.cancelled": "ملغى",
		"booking.status.completed": "مكتمل",
		"booking.confirmBooking":   "تأكيد الحجز",
		"booking.totalStay":        "إجمالي الإقامة",
		"booking.bookingError":     "حدث خطأ أثناء الحجز. الرجاء المحاولة مرة أخرى.",

		"hotels.checkIn":  "تاريخ الوصول",
		"hotels.checkOut": "تاريخ المغادرة",
		"hotels.guests":   "الضيوف",
		"hotels.city":     "المدينة",

		"payment.cardNumber": "رقم البطاقة",
		"payment.cardHolder": "اسم حامل البطاقة",
		"payment.success":    "تمت عملية الدفع بنجاح",
		"payment.failure":    "فشلت عملية الدفع، الرجاء المحاولة مرة أخرى",

		"chatbot.hotel":   "يمكنك تصفح الفنادق من صفحة الفنادق واختيار ما يناسبك.",
		"chatbot.booking": "يمكنك إدارة حجوزاتك من صفحة حجوزاتي.",
		"chatbot.cancel":  "يمكنك إلغاء الحجز من صفحة حجوزاتي ما دام الحجز قيد الانتظار أو مؤكداً.",
		"chatbot.payment": "نقبل الدفع بالبطاقة عند تأكيد الحجز.",
		"chatbot.default": "كيف يمكنني مساعدتك؟ اسألني عن الفنادق أو الحجوزات أو الدفع.",
	},
	French: {
		"common.loading":  "Chargement...",
		"common.error":    "Une erreur est survenue, veuillez réessayer",
		"common.noResults": "Aucun trajet ne correspond aux critères de recherche",

		"cities.algiers":        "Alger",
		"cities.oran":           "Oran",
		"cities.constantine":    "Constantine",
		"cities.annaba":         "Annaba",
		"cities.setif":          "Sétif",
		"cities.batna":          "Batna",
		"cities.blida":          "Blida",
		"cities.sidi_bel_abbes": "Sidi Bel Abbès",
		"cities.tlemcen":        "Tlemcen",
		"cities.biskra":         "Biskra",

		"bus.type.standard": "Standard",
		"bus.type.premium":  "Premium",
		"bus.type.vip":      "VIP",
		"bus.seatTaken":     "Ce siège est déjà réservé. Veuillez en choisir un autre.",
		"bus.chooseSeat":    "Veuillez choisir un siège",
		"bus.passengerData": "Veuillez saisir les informations du passager",

		"booking.status.pending":   "En attente",
		"booking.status.confirmed": "Confirmée",
		"booking.status.canceled":  "Annulée",
		"booking.status.cancelled": "Annulée",
		"booking.status.completed": "Terminée",
		"booking.confirmBooking":   "Confirmer la réservation",
		"booking.totalStay":        "Total du séjour",
		"booking.bookingError":     "Une erreur est survenue lors de la réservation. Veuillez réessayer.",

		"hotels.checkIn":  "Date d'arrivée",
		"hotels.checkOut": "Date de départ",
		"hotels.guests":   "Voyageurs",
		"hotels.city":     "Ville",

		"payment.cardNumber": "Numéro de carte",
		"payment.cardHolder": "Titulaire de la carte",
		"payment.success":    "Paiement effectué avec succès",
		"payment.failure":    "Le paiement a échoué, veuillez réessayer",

		"chatbot.hotel":   "Vous pouvez parcourir les hôtels depuis la page Hôtels.",
		"chatbot.booking": "Vous pouvez gérer vos réservations depuis la page Mes réservations.",
		"chatbot.cancel":  "Une réservation en attente ou confirmée peut être annulée depuis Mes réservations.",
		"chatbot.payment": "Nous acceptons le paiement par carte à la confirmation de la réservation.",
		"chatbot.default": "Comment puis-je vous aider ? Posez-moi une question sur les hôtels, les réservations ou le paiement.",
	},
	English: {
		"common.loading":  "Loading...",
		"common.error":    "Something went wrong, please try again",
		"common.noResults": "No trips match the search criteria",

		"cities.algiers":        "Algiers",
		"cities.oran":           "Oran",
		"cities.constantine":    "Constantine",
		"cities.annaba":         "Annaba",
		"cities.setif":          "Setif",
		"cities.batna":          "Batna",
		"cities.blida":          "Blida",
		"cities.sidi_bel_abbes": "Sidi Bel Abbes",
		"cities.tlemcen":        "Tlemcen",
		"cities.biskra":         "Biskra",

		"bus.type.standard": "Standard",
		"bus.type.premium":  "Premium",
		"bus.type.vip":      "VIP",
		"bus.seatTaken":     "This seat is already booked. Please pick another one.",
		"bus.chooseSeat":    "Please choose a seat",
		"bus.passengerData": "Please enter the passenger details",

		"booking.status.pending":   "Pending",
		"booking.status.confirmed": "Confirmed",
		"booking.status.canceled":  "Canceled",
		"booking.status.cancelled": "Cancelled",
		"booking.status.completed": "Completed",
		"booking.confirmBooking":   "Confirm booking",
		"booking.totalStay":        "Stay total",
		"booking.bookingError":     "Something went wrong while booking. Please try again.",

		"hotels.checkIn":  "Check-in",
		"hotels.checkOut": "Check-out",
		"hotels.guests":   "Guests",
		"hotels.city":     "City",

		"payment.cardNumber": "Card number",
		"payment.cardHolder": "Card holder",
		"payment.success":    "Payment completed successfully",
		"payment.failure":    "Payment failed, please try again",

		"chatbot.hotel":   "You can browse hotels from the Hotels page and pick what suits you.",
		"chatbot.booking": "You can manage your bookings from the My Bookings page.",
		"chatbot.cancel":  "A pending or confirmed booking can be cancelled from My Bookings.",
		"chatbot.payment": "We accept card payment when confirming a booking.",
		"chatbot.default": "How can I help? Ask me about hotels, bookings or payment.",
	},
}
