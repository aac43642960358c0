package cas

const fullStatement = `Consolidated Account Statement
CAMS - Consolidated Account Statement
Statement for the period from 01-Apr-2024 to 31-Mar-2025
Email Id: john.doe@example.com
JOHN DOE
PAN: ABCDE1234F
12 MG Road, Indiranagar
Bengaluru - 560038
Mobile: +91 9876543210
Folio No: 1234567 / 89
HDFC Mutual Fund
B205RG-HDFC Top 100 Fund - Direct Growth - ISIN: INF179K01YV8(Advisor: ARN-12345) Registrar : CAMS
Opening Unit Balance: 100.000
01-Apr-2024 Purchase - SIP 1,000.00 10.500 95.20
15-Jun-2024 Redemption (500.00) (5.000) 100.00
Closing Unit Balance: 120.500 45.6700 5502.83 Cost: Rs. 5,000.00
Folio No: 7654321
Axis Mutual Fund
Axis Bluechip Fund - Direct Growth
ISIN: INF846K01DP8 Registrar : KFINTECH
05-May-2024 Dividend Reinvestment @ Rs. 1.25 per unit 250.00 5.000 50.00
06-May-2024 Purchase abc 10.000 50.00
07-May-2024 Switch Out - To Axis Liquid 550.00 10.000 55.00
Closing Unit Balance: 200.000 55.1000 11020.00
`

const summaryStatement = `CAMS - Consolidated Account Summary
Statement Period: 01-Apr-2024 to 30-Sep-2024
JANE ROE PAN: PQRST6789Z
Flat 4, Lake View
Pune
Folio No: 555001
ICICI Prudential Mutual Fund
ICICI Prudential Bluechip Fund - Growth
ISIN: INF109K01BL4
10-Apr-2024 Purchase 2,000.00 20.000 100.00
10-May-2024 Purchase 1,100.00 10.000 110.00
10-Jun-2024 Redemption 600.00 5.000 120.00
`
