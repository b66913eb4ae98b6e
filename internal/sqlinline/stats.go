package sqlinline

const QCountPrograms = `--sql 541bd614-d9c4-4763-9bdb-086acf5e3b7e
select count(*)
from programs;
`

const QDonationTotals = `--sql 0ee47056-a2db-493f-9a95-6afcc40643f7
select
  count(*),
  coalesce(sum(amount) filter (where donation_type = 'money' and status = 'Received'), 0)::text
from donations;
`

const QExpenseTotals = `--sql 9f0d7cfb-1da5-4fb5-a660-40fdfd38e63e
select count(*), coalesce(sum(amount), 0)::text
from expenses;
`
